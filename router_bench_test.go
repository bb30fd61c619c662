package radix

import "testing"

func buildBenchRouter() *Router[int] {
	r := New[int]()
	routes := []string{
		"/",
		"/users",
		"/users/{id}",
		"/users/{id}/posts",
		"/users/{id}/posts/{postID}",
		"/static/{*path}",
		"/files/{name}.txt",
		"/api/v1/health",
	}
	for i, p := range routes {
		_ = r.Insert([]byte(p), i)
	}
	return r
}

func BenchmarkMatchStatic(b *testing.B) {
	r := buildBenchRouter()
	path := []byte("/api/v1/health")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = r.Match(path)
	}
}

func BenchmarkMatchParam(b *testing.B) {
	r := buildBenchRouter()
	path := []byte("/users/1234/posts/5678")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = r.Match(path)
	}
}

func BenchmarkMatchCatchAll(b *testing.B) {
	r := buildBenchRouter()
	path := []byte("/static/css/vendor/app.min.css")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = r.Match(path)
	}
}

func BenchmarkInsert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		r := New[int]()
		b.StartTimer()
		_ = r.Insert([]byte("/users/{id}/posts/{postID}"), 1)
	}
}
