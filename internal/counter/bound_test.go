package counter_test

import (
	"primecount/internal/counter"
	"primecount/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUpperBound(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int64
		wantErr serrors.Kind
	}{
		{name: "plain", args: []string{"110"}, want: 110},
		{name: "zero", args: []string{"0"}, want: 0},
		{name: "negative", args: []string{"-12"}, want: -12},
		{name: "explicit sign", args: []string{"+200"}, want: 200},
		{name: "max int64", args: []string{"9223372036854775807"}, want: 9223372036854775807},
		{name: "missing", args: nil, wantErr: serrors.ErrMissingArgument},
		{name: "empty slice", args: []string{}, wantErr: serrors.ErrMissingArgument},
		{name: "too many", args: []string{"1", "2"}, wantErr: serrors.ErrMalformedArgument},
		{name: "not a number", args: []string{"abc"}, wantErr: serrors.ErrMalformedArgument},
		{name: "empty string", args: []string{""}, wantErr: serrors.ErrMalformedArgument},
		{name: "trailing garbage", args: []string{"12abc"}, wantErr: serrors.ErrMalformedArgument},
		{name: "surrounding space", args: []string{" 12"}, wantErr: serrors.ErrMalformedArgument},
		{name: "float", args: []string{"1.5"}, wantErr: serrors.ErrMalformedArgument},
		{name: "hex", args: []string{"0x10"}, wantErr: serrors.ErrMalformedArgument},
		{name: "overflow", args: []string{"9223372036854775808"}, wantErr: serrors.ErrOutOfRange},
		{name: "underflow", args: []string{"-9223372036854775809"}, wantErr: serrors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := counter.ParseUpperBound(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
