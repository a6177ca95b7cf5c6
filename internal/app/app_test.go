package app

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/config"
)

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) succeeded; want error")
	}
}

func TestResolveCORSConfig(t *testing.T) {
	t.Run("configured origins win", func(t *testing.T) {
		got := resolveCORSConfig(gin.ReleaseMode, config.CORSConfig{
			AllowOrigins: []string{"https://app.example.com"},
		})
		if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://app.example.com" {
			t.Errorf("AllowOrigins = %v", got.AllowOrigins)
		}
	})

	t.Run("release mode denies by default", func(t *testing.T) {
		got := resolveCORSConfig(gin.ReleaseMode, config.CORSConfig{})
		if len(got.AllowOrigins) != 0 {
			t.Errorf("AllowOrigins = %v; want empty", got.AllowOrigins)
		}
	})

	t.Run("debug mode stays permissive", func(t *testing.T) {
		got := resolveCORSConfig(gin.DebugMode, config.CORSConfig{})
		if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "*" {
			t.Errorf("AllowOrigins = %v; want [*]", got.AllowOrigins)
		}
	})

	t.Run("max age converts to seconds", func(t *testing.T) {
		got := resolveCORSConfig(gin.DebugMode, config.CORSConfig{MaxAge: "2h"})
		if got.MaxAge != "7200" {
			t.Errorf("MaxAge = %q; want 7200", got.MaxAge)
		}
	})

	t.Run("bad max age keeps default", func(t *testing.T) {
		def := resolveCORSConfig(gin.DebugMode, config.CORSConfig{})
		got := resolveCORSConfig(gin.DebugMode, config.CORSConfig{MaxAge: "soon"})
		if got.MaxAge != def.MaxAge {
			t.Errorf("MaxAge = %q; want default %q", got.MaxAge, def.MaxAge)
		}
	})

	t.Run("methods and headers pass through", func(t *testing.T) {
		got := resolveCORSConfig(gin.DebugMode, config.CORSConfig{
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Authorization"},
		})
		if len(got.AllowMethods) != 1 || got.AllowMethods[0] != "GET" {
			t.Errorf("AllowMethods = %v", got.AllowMethods)
		}
		if len(got.AllowHeaders) != 1 || got.AllowHeaders[0] != "Authorization" {
			t.Errorf("AllowHeaders = %v", got.AllowHeaders)
		}
	})
}
