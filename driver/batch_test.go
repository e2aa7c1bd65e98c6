package driver_test

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/driver"
)

func TestRunBatch_SiblingsRunDespiteOneError(t *testing.T) {
	c := qt.New(t)

	items := []driver.BatchItem[int]{
		{Do: func(context.Context) (int, error) { return 1, nil }},
		{Do: func(context.Context) (int, error) { return 0, errors.New("boom") }},
		{Do: func(context.Context) (int, error) { return 3, nil }},
	}

	results := driver.RunBatch(context.Background(), items, 2)
	c.Assert(results, qt.HasLen, 3)
	c.Assert(results[0].Err, qt.IsNil)
	c.Assert(results[0].Value, qt.Equals, 1)
	c.Assert(results[1].Err, qt.ErrorMatches, "boom")
	c.Assert(results[2].Err, qt.IsNil)
	c.Assert(results[2].Value, qt.Equals, 3)
}

func TestRunBatch_PanicIsRecoveredAsError(t *testing.T) {
	c := qt.New(t)

	items := []driver.BatchItem[int]{
		{Do: func(context.Context) (int, error) { panic("kaboom") }},
		{Do: func(context.Context) (int, error) { return 5, nil }},
	}

	results := driver.RunBatch(context.Background(), items, 0)
	c.Assert(results, qt.HasLen, 2)
	c.Assert(results[0].Err, qt.ErrorMatches, "driver: batch item 0 panicked: kaboom")
	c.Assert(results[0].Panic, qt.Equals, "kaboom")
	c.Assert(results[1].Err, qt.IsNil)
	c.Assert(results[1].Value, qt.Equals, 5)
}

func TestRunBatch_EmptyReturnsEmpty(t *testing.T) {
	c := qt.New(t)

	results := driver.RunBatch[int](context.Background(), nil, 4)
	c.Assert(results, qt.HasLen, 0)
}
