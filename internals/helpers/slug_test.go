package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kelas Tahfidz Pagi", "kelas-tahfidz-pagi"},
		{"  Ngaji   Ba'da Maghrib ", "ngaji-ba-da-maghrib"},
		{"Café Al-Hidayah", "cafe-al-hidayah"},
		{"---", "item"},
		{"", "item"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in, 100), "slugify(%q)", tt.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("abc ", 50)
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 10)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
