package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardPage_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   CardPage
		want CardPage
	}{
		{
			name: "zero value gets defaults",
			in:   CardPage{},
			want: CardPage{Page: 0, Size: DefaultPageSize, Sort: SortFieldNone, Dir: SortAsc},
		},
		{
			name: "negative page clamped",
			in:   CardPage{Page: -3, Size: 10},
			want: CardPage{Page: 0, Size: 10, Sort: SortFieldNone, Dir: SortAsc},
		},
		{
			name: "oversized page size capped",
			in:   CardPage{Size: 5000},
			want: CardPage{Size: MaxPageSize, Sort: SortFieldNone, Dir: SortAsc},
		},
		{
			name: "amount descending preserved",
			in:   CardPage{Size: 2, Sort: SortFieldAmount, Dir: SortDesc},
			want: CardPage{Size: 2, Sort: SortFieldAmount, Dir: SortDesc},
		},
		{
			name: "unknown sort field defaulted",
			in:   CardPage{Size: 2, Sort: SortField("owner"), Dir: SortDesc},
			want: CardPage{Size: 2, Sort: SortFieldNone, Dir: SortAsc},
		},
		{
			name: "unknown direction defaulted to asc",
			in:   CardPage{Size: 2, Sort: SortFieldAmount, Dir: SortDirection("sideways")},
			want: CardPage{Size: 2, Sort: SortFieldAmount, Dir: SortAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestCardPage_Offset(t *testing.T) {
	assert.Equal(t, 0, CardPage{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, CardPage{Page: 2, Size: 20}.Offset())
}
