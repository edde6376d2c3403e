package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	cases := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"?page=3", 3, false},
		{"?page=0", 0, true},
		{"?page=-1", 0, true},
		{"?page=abc", 0, true},
	}
	for _, c := range cases {
		got, err := ParsePage(httptest.NewRequest("GET", "/pets/"+c.query, nil))
		if c.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPage, c.query)
			continue
		}
		require.NoError(t, err, c.query)
		assert.Equal(t, c.want, got, c.query)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(1, 10, 0))
	assert.NoError(t, Check(2, 2, 3))
	assert.ErrorIs(t, Check(3, 2, 3), ErrInvalidPage)
	assert.ErrorIs(t, Check(2, 10, 0), ErrInvalidPage)
}

func TestNew_Links(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/pets/?trait=Venomous&page=2", nil)

	p := New(r, 2, 2, 5, []int{3, 4})

	assert.Equal(t, 5, p.Count)
	require.NotNil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, "http://example.com/pets/?page=3&trait=Venomous", *p.Next)
	assert.Equal(t, "http://example.com/pets/?trait=Venomous", *p.Previous)
}

func TestNew_SinglePage(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/pets/", nil)

	p := New[int](r, 1, 10, 0, nil)

	assert.Nil(t, p.Next)
	assert.Nil(t, p.Previous)
	assert.NotNil(t, p.Results)
	assert.Empty(t, p.Results)
}
