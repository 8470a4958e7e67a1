package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Őszi akció: telefonok -20%", "oszi-akcio-telefonok-20"},
		{"Így válassz SSD-t", "igy-valassz-ssd-t"},
		{"  Hello   World  ", "hello-world"},
		{"árvíztűrő tükörfúrógép", "arvizturo-tukorfurogep"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title=%q", tc.title)
	}
}
