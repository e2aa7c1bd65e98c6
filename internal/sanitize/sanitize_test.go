package sanitize_test

import (
	"regexp"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro-labs/loomquery/internal/sanitize"
)

var validIdentifier = regexp.MustCompile(`^[A-Za-z][_A-Za-z0-9]*$`)

func TestName_ConcreteScenario(t *testing.T) {
	c := qt.New(t)

	sanitized, dbName := sanitize.Name("2user!name")
	c.Assert(sanitized, qt.Equals, "user_name")
	c.Assert(dbName, qt.IsNotNil)
	c.Assert(*dbName, qt.Equals, "2user!name")
}

func TestName_AlreadyValidIsUnchanged(t *testing.T) {
	c := qt.New(t)

	sanitized, dbName := sanitize.Name("UserProfile")
	c.Assert(sanitized, qt.Equals, "UserProfile")
	c.Assert(dbName, qt.IsNil)
}

func TestName_Idempotent(t *testing.T) {
	c := qt.New(t)

	names := []string{"2user!name", "UserProfile", "__private", "a", "123", "", "a-b.c d"}
	for _, n := range names {
		sanitizedOnce, _ := sanitize.Name(n)
		sanitizedTwice, dbNameTwice := sanitize.Name(sanitizedOnce)

		c.Assert(sanitizedTwice, qt.Equals, sanitizedOnce, qt.Commentf("input %q", n))
		c.Assert(dbNameTwice, qt.IsNil, qt.Commentf("input %q", n))
	}
}

func TestName_OutputIsValidIdentifierWhenInputHasALetter(t *testing.T) {
	c := qt.New(t)

	names := []string{"2user!name", "__private", "a", "a-b.c d", "9x", "order#1"}
	for _, n := range names {
		sanitized, _ := sanitize.Name(n)
		c.Assert(validIdentifier.MatchString(sanitized), qt.IsTrue, qt.Commentf("sanitized %q from input %q", sanitized, n))
	}
}

func TestName_NoLettersCollapsesToEmpty(t *testing.T) {
	c := qt.New(t)

	sanitized, dbName := sanitize.Name("123")
	c.Assert(sanitized, qt.Equals, "")
	c.Assert(dbName, qt.IsNotNil)
}
