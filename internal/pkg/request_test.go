package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: tt.raw}}

		got, err := ParseID(c)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseID(%q) = %d; want error", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseID(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}
