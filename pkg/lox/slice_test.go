package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"pet_market/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	result, err := lox.MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2, 3}, result)

	result, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Nil(result)

	var numErr *strconv.NumError
	rq.True(errors.As(err, &numErr))
}

func TestMapIndexed(t *testing.T) {
	rq := require.New(t)

	result := lox.MapIndexed([]string{"a", "b"}, func(s string, i int) string {
		return strconv.Itoa(i+1) + s
	})

	rq.Equal([]string{"1a", "2b"}, result)
	rq.Empty(lox.Map([]int(nil), strconv.Itoa))
}
