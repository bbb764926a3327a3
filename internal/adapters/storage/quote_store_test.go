package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/costanza-quotes/internal/domain"
)

func seedQuotes(t *testing.T, store *QuoteStore, quotes ...domain.NewQuote) []domain.Quote {
	t.Helper()

	created := make([]domain.Quote, 0, len(quotes))

	for _, q := range quotes {
		stored, err := store.Create(context.Background(), q)
		require.NoError(t, err)

		created = append(created, stored)
	}

	return created
}

var (
	serenityNow = domain.NewQuote{Text: "Serenity now!", Season: 9, Episode: 3, Character: domain.FrankCostanza}
	festivus    = domain.NewQuote{Text: "A Festivus for the rest of us!", Season: 9, Episode: 10, Character: domain.FrankCostanza}
	pretzels    = domain.NewQuote{Text: "These pretzels are making me thirsty!", Season: 2, Episode: 4, Character: "Kramer"}
	marine      = domain.NewQuote{Text: "The sea was angry that day, my friends.", Season: 4, Episode: 17, Character: domain.GeorgeCostanza}
)

func TestQuoteStore_Create(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	first, err := store.Create(ctx, serenityNow)
	require.NoError(t, err)

	second, err := store.Create(ctx, pretzels)
	require.NoError(t, err)

	assert.Equal(t, serenityNow.Text, first.Text)
	assert.Equal(t, serenityNow.Season, first.Season)
	assert.Equal(t, serenityNow.Episode, first.Episode)
	assert.Equal(t, serenityNow.Character, first.Character)
	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID, "ids increase with creation order")
}

func TestQuoteStore_Create_Duplicate(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	seedQuotes(t, store, serenityNow)

	_, err := store.Create(ctx, domain.NewQuote{Text: serenityNow.Text, Season: 1, Episode: 1, Character: "Estelle Costanza"})

	require.True(t, domain.IsConflict(err), "unique constraint is reported as a conflict: %v", err)

	quotes, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
}

func TestQuoteStore_List(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	seeded := seedQuotes(t, store, serenityNow, pretzels, marine)

	quotes, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded, quotes)
}

func TestQuoteStore_Random(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	_, err := store.Random(ctx, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)

	seeded := seedQuotes(t, store, serenityNow, pretzels)

	q, err := store.Random(ctx, nil)
	require.NoError(t, err)
	assert.Contains(t, seeded, q)
}

func TestQuoteStore_Random_ByCharacter(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	third := domain.NewQuote{Text: "You want a piece of me?", Season: 7, Episode: 2, Character: domain.FrankCostanza}
	seedQuotes(t, store, serenityNow, festivus, third, pretzels, marine)

	frank := domain.FrankCostanza
	seen := make(map[string]int)

	for range 300 {
		q, err := store.Random(ctx, &frank)
		require.NoError(t, err)
		require.Equal(t, domain.FrankCostanza, q.Character)

		seen[q.Text]++
	}

	assert.Len(t, seen, 3, "every matching row is selectable")

	for text, n := range seen {
		assert.Greater(t, n, 30, "selection of %q is far from uniform", text)
	}
}

func TestQuoteStore_Random_ExactMatchOnly(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	seedQuotes(t, store, domain.NewQuote{Text: "Hoochie mama!", Season: 6, Episode: 9, Character: "frank costanza"})

	frank := domain.FrankCostanza
	_, err := store.Random(context.Background(), &frank)

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteStore_FindByCharacter(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	seedQuotes(t, store, serenityNow, pretzels, marine,
		domain.NewQuote{Text: "100% pure", Season: 1, Episode: 1, Character: "Mr. 100%"},
		domain.NewQuote{Text: "snake", Season: 1, Episode: 2, Character: "snake_case"},
		domain.NewQuote{Text: "Get out!", Season: 5, Episode: 1, Character: "Élaine Benes"},
	)

	tests := []struct {
		name   string
		substr string
		want   []string
	}{
		{name: "case-insensitive substring", substr: "costanza", want: []string{serenityNow.Text, marine.Text}},
		{name: "upper case input", substr: "KRAMER", want: []string{pretzels.Text}},
		{name: "inner fragment", substr: "rge cos", want: []string{marine.Text}},
		{name: "percent matches literally", substr: "%", want: []string{"100% pure"}},
		{name: "underscore matches literally", substr: "_", want: []string{"snake"}},
		{name: "non-ascii lower case input", substr: "élaine", want: []string{"Get out!"}},
		{name: "non-ascii upper case input", substr: "ÉLAINE BENES", want: []string{"Get out!"}},
		{name: "no match", substr: "Newman", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := store.FindByCharacter(ctx, tt.substr)
			require.NoError(t, err)

			texts := make([]string, 0, len(quotes))
			for _, q := range quotes {
				texts = append(texts, q.Text)
			}

			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestQuoteStore_ExistsByText(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	seedQuotes(t, store, serenityNow)

	exists, err := store.ExistsByText(ctx, serenityNow.Text)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsByText(ctx, "serenity now!")
	require.NoError(t, err)
	assert.False(t, exists, "text comparison is exact")
}

func TestQuoteStore_CreateBatch(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))
	ctx := context.Background()

	created, err := store.CreateBatch(ctx, []domain.NewQuote{serenityNow, pretzels, marine})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, serenityNow.Text, created[0].Text)
	assert.Equal(t, pretzels.Text, created[1].Text)
	assert.Equal(t, marine.Text, created[2].Text)
	assert.Less(t, created[0].ID, created[1].ID)
	assert.Less(t, created[1].ID, created[2].ID)

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestQuoteStore_CreateBatch_Empty(t *testing.T) {
	store := NewQuoteStore(newTestDatabase(t))

	created, err := store.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, created)
	assert.Empty(t, created)
}

func TestQuoteStore_CreateBatch_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		existing []domain.NewQuote
		batch    []domain.NewQuote
		wantText string
		wantRows int
	}{
		{
			name:     "duplicate inside the batch",
			batch:    []domain.NewQuote{serenityNow, pretzels, serenityNow, marine},
			wantText: serenityNow.Text,
			wantRows: 0,
		},
		{
			name:     "duplicate of a stored row",
			existing: []domain.NewQuote{marine},
			batch:    []domain.NewQuote{serenityNow, pretzels, marine},
			wantText: marine.Text,
			wantRows: 1,
		},
		{
			name:     "first duplicate is reported",
			existing: []domain.NewQuote{pretzels, marine},
			batch:    []domain.NewQuote{serenityNow, marine, pretzels},
			wantText: marine.Text,
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewQuoteStore(newTestDatabase(t))
			ctx := context.Background()

			seedQuotes(t, store, tt.existing...)

			created, err := store.CreateBatch(ctx, tt.batch)
			require.Error(t, err)
			assert.Nil(t, created)

			var conflict *domain.ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.wantText, conflict.Value)
			assert.Equal(t, "Quote '"+tt.wantText+"' already exists", conflict.Error())

			stored, err := store.List(ctx)
			require.NoError(t, err)
			assert.Len(t, stored, tt.wantRows, "no row of a rejected batch is stored")
		})
	}
}

func TestQuoteStore_CreateBatch_OnSession(t *testing.T) {
	db := newTestDatabase(t)
	store := NewQuoteStore(db)

	ctx, release, err := db.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	_, err = store.CreateBatch(ctx, []domain.NewQuote{serenityNow, serenityNow})
	require.True(t, domain.IsConflict(err))

	created, err := store.CreateBatch(ctx, []domain.NewQuote{pretzels})
	require.NoError(t, err)
	require.Len(t, created, 1)

	quotes, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, quotes, "the session is usable after a rolled-back batch")
}
