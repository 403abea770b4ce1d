package dto

import (
	"encoding/json"
	"testing"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardResponse_MarshalsBareNumbers(t *testing.T) {
	card := domain.CashCard{
		ID:     99,
		Amount: decimal.RequireFromString("123.45"),
		Owner:  "sarah1",
	}

	b, err := json.Marshal(ToCardResponse(&card))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":99,"amount":123.45,"owner":"sarah1"}`, string(b))
}

func TestToCardResponses_EmptyIsNotNull(t *testing.T) {
	b, err := json.Marshal(ToCardResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestListCardsQuery_ToPage(t *testing.T) {
	tests := []struct {
		name  string
		query ListCardsQuery
		want  ports.CardPage
	}{
		{
			name:  "no sort",
			query: ListCardsQuery{Page: 1, Size: 5},
			want:  ports.CardPage{Page: 1, Size: 5},
		},
		{
			name:  "amount desc",
			query: ListCardsQuery{Page: 0, Size: 2, Sort: "amount,desc"},
			want:  ports.CardPage{Page: 0, Size: 2, Sort: ports.SortFieldAmount, Dir: ports.SortDesc},
		},
		{
			name:  "field only defaults asc",
			query: ListCardsQuery{Sort: "amount"},
			want:  ports.CardPage{Sort: ports.SortFieldAmount, Dir: ports.SortAsc},
		},
		{
			name:  "mixed case and spaces",
			query: ListCardsQuery{Sort: " Amount , DESC "},
			want:  ports.CardPage{Sort: ports.SortFieldAmount, Dir: ports.SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.ToPage())
		})
	}
}
