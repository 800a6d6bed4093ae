package user

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	users []User
}

func (f *fakeSearcher) SearchByUsername(_ context.Context, query string) ([]User, error) {
	var out []User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Username), strings.ToLower(query)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func TestService_Search(t *testing.T) {
	store := &fakeSearcher{users: []User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "Alicia"},
		{ID: uuid.New(), Username: "bob"},
	}}
	svc := NewService(store)

	results, err := svc.Search(context.Background(), "ali")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "alice", results[0].Username)
	assert.Equal(t, "Alicia", results[1].Username)
}

func TestService_Search_EmptyQuery(t *testing.T) {
	svc := NewService(&fakeSearcher{})

	results, err := svc.Search(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Nil(t, results)
}

func TestService_Search_NoMatches(t *testing.T) {
	store := &fakeSearcher{users: []User{{ID: uuid.New(), Username: "bob"}}}
	svc := NewService(store)

	results, err := svc.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
