package httpfilter

import "testing"

func TestStatusCodeErrors_RangeShorthand(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors([]string{"5xx"})

	for _, code := range []int{500, 503, 599} {
		if !s.IsErrorCode(code) {
			t.Errorf("5xx should classify %d as error", code)
		}
	}
	for _, code := range []int{200, 404, 499, 600} {
		if s.IsErrorCode(code) {
			t.Errorf("5xx should not classify %d as error", code)
		}
	}
}

func TestStatusCodeErrors_ExactCode(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors([]string{"404"})

	if !s.IsErrorCode(404) {
		t.Error("404 should be an error")
	}
	if s.IsErrorCode(403) {
		t.Error("403 should not be an error")
	}
}

func TestStatusCodeErrors_MixedTokens(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors([]string{"4xx", "5xx", "200"})

	for _, code := range []int{400, 404, 500, 599, 200} {
		if !s.IsErrorCode(code) {
			t.Errorf("expected %d to be an error", code)
		}
	}
	for _, code := range []int{300, 201, 100} {
		if s.IsErrorCode(code) {
			t.Errorf("expected %d not to be an error", code)
		}
	}
}

func TestStatusCodeErrors_UnparseableTokensDropped(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors([]string{"abc", "xx5", "0xx", "", "5xx"})

	if !s.IsErrorCode(500) {
		t.Error("valid token should survive invalid siblings")
	}
	if s.IsErrorCode(0) {
		t.Error("invalid tokens must not match anything")
	}
}

func TestStatusCodeErrors_DuplicatesHarmless(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors([]string{"500", "500", "5xx"})

	if !s.IsErrorCode(500) {
		t.Error("500 should be an error")
	}
	if s.IsErrorCode(499) {
		t.Error("499 should not be an error")
	}
}

func TestStatusCodeErrors_UppercaseShorthandAccepted(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors([]string{"4XX"})

	if !s.IsErrorCode(418) {
		t.Error("4XX should be accepted like 4xx")
	}
}

func TestStatusCodeErrors_EmptyConfigurationClassifiesNothing(t *testing.T) {
	t.Parallel()
	s := NewStatusCodeErrors(nil)

	if s.IsErrorCode(500) {
		t.Error("empty classifier must not match")
	}
}
