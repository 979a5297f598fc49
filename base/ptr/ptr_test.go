package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	s.Equal("escrow", *String("escrow"))
	s.Equal(5, *Int(5))
	s.Equal(true, *Bool(true))
}

func (s *pointerSuite) TestDistinctPointers() {
	a, b := Int(1), Int(1)
	s.NotSame(a, b)
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
