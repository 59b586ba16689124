package script

import (
	"github.com/hashicorp/go-multierror"
	"github.com/walteh/gotags/pkg/trigger"
	"gitlab.com/tozd/go/errors"
)

var ErrInvalidStep = errors.Base("invalid step")

func (st *Step) actions() int {
	n := 0
	if st.Type != nil {
		n++
	}
	if st.Backspace != nil {
		n++
	}
	if st.Move != nil {
		n++
	}
	if st.Commit != nil {
		n++
	}
	if st.Candidates != nil {
		n++
	}
	if st.Replace != nil {
		n++
	}
	return n
}

// Validate reports every problem in s at once.
func (s *Script) Validate() error {
	var result *multierror.Error

	if s.Triggers != nil {
		if _, err := trigger.New(s.Triggers...); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if s.Caret != nil && *s.Caret < 0 {
		result = multierror.Append(result, errors.Errorf("caret %d is negative", *s.Caret))
	}

	for i, st := range s.Steps {
		if st == nil {
			result = multierror.Append(result, errors.Errorf("%w %d: empty", ErrInvalidStep, i))
			continue
		}
		switch n := st.actions(); {
		case n == 0 && st.Expect == nil:
			result = multierror.Append(result, errors.Errorf("%w %d: no action or expectation", ErrInvalidStep, i))
		case n > 1:
			result = multierror.Append(result, errors.Errorf("%w %d: %d actions, want one", ErrInvalidStep, i, n))
		}
		if st.Backspace != nil && *st.Backspace < 0 {
			result = multierror.Append(result, errors.Errorf("%w %d: negative backspace", ErrInvalidStep, i))
		}
		if st.Replace != nil && (st.Replace.Start < 0 || st.Replace.Length < 0) {
			result = multierror.Append(result, errors.Errorf("%w %d: negative replace span", ErrInvalidStep, i))
		}
	}

	return result.ErrorOrNil()
}
