//go:build !swagger

package httpapi

import (
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMountSwaggerStubNoRoutes(t *testing.T) {
	r := chi.NewRouter()
	MountSwagger(r)
	if len(r.Routes()) != 0 {
		t.Fatalf("stub should not register routes")
	}
}
