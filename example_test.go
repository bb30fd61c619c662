package radix_test

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/routewise/radix"
)

// Example demonstrates instantiating the tree with a concrete HTTP handler
// value type, the way a router built on top of this package would.
func Example() {
	r := radix.New[fasthttp.RequestHandler]()

	hello := func(ctx *fasthttp.RequestCtx) {
		fmt.Fprintf(ctx, "hello")
	}

	if err := r.Insert([]byte("/hello/{name}"), hello); err != nil {
		panic(err)
	}

	handler, params, ok := r.Match([]byte("/hello/world"))
	if !ok {
		panic("expected a match")
	}
	name, _ := params.Get("name")
	fmt.Println(name)

	var ctx fasthttp.RequestCtx
	(*handler)(&ctx)
	fmt.Println(string(ctx.Response.Body()))

	// Output:
	// world
	// hello
}
