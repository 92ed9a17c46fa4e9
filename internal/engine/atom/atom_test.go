package atom

import "testing"

func TestNewRootHasBody(t *testing.T) {
	root := NewRoot()

	if !root.IsRoot() {
		t.Error("root should have no parent")
	}
	body := root.Branch(Body)
	if len(body) != 1 {
		t.Fatalf("expected body with sentinel only, got %d atoms", len(body))
	}
	if body[0].Type != First {
		t.Errorf("expected first sentinel at slot 0, got %s", body[0].Type)
	}
}

func TestCreateBranchIdempotent(t *testing.T) {
	a := New(Ordinary, Math, "x")

	first := a.CreateBranch(Superscript)
	a.Append(Superscript, New(Ordinary, Math, "2"))
	second := a.CreateBranch(Superscript)

	if len(second) != 2 {
		t.Errorf("re-creating a branch should return the existing one, got %d atoms", len(second))
	}
	if first[0] != second[0] {
		t.Error("re-creating a branch should not replace its sentinel")
	}
}

func TestBranchIsEmpty(t *testing.T) {
	a := New(Ordinary, Math, "x")

	if !a.BranchIsEmpty(Superscript) {
		t.Error("missing branch should be empty")
	}
	a.CreateBranch(Superscript)
	if !a.BranchIsEmpty(Superscript) {
		t.Error("branch with only its sentinel should be empty")
	}
	a.Append(Superscript, New(Ordinary, Math, "2"))
	if a.BranchIsEmpty(Superscript) {
		t.Error("branch with a real child should not be empty")
	}
}

func TestHasBranchDoesNotCreate(t *testing.T) {
	a := New(Ordinary, Math, "x")

	if a.HasBranch(Subscript) {
		t.Error("querying a branch should not create it")
	}
	if a.Branch(Subscript) != nil {
		t.Error("Branch should return nil for a missing branch")
	}
}

func TestSiblingNavigation(t *testing.T) {
	root := NewRoot()
	x := New(Ordinary, Math, "x")
	y := New(Ordinary, Math, "y")
	root.AppendAll(Body, x, y)

	if x.LeftSibling() == nil || x.LeftSibling().Type != First {
		t.Error("x's left sibling should be the sentinel")
	}
	if x.RightSibling() != y {
		t.Error("x's right sibling should be y")
	}
	if y.RightSibling() != nil {
		t.Error("y should have no right sibling")
	}
	if !y.IsLastSibling() {
		t.Error("y should be the last sibling")
	}
	sentinel := root.Branch(Body)[0]
	if !sentinel.IsFirstSibling() {
		t.Error("the sentinel should be the first sibling")
	}
	if x.FirstSibling() != sentinel || x.LastSibling() != y {
		t.Error("first/last sibling queries disagree with the branch")
	}
}

func TestRemoveDetaches(t *testing.T) {
	root := NewRoot()
	x := New(Ordinary, Math, "x")
	root.Append(Body, x)

	root.Remove(x)

	if len(root.Branch(Body)) != 1 {
		t.Error("removal should leave only the sentinel")
	}
	if x.Parent() != nil {
		t.Error("removed atom should be detached")
	}
}

func TestRemoveSentinelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("removing a sentinel should panic")
		}
	}()
	root := NewRoot()
	root.Remove(root.Branch(Body)[0])
}

func TestCaptureOwner(t *testing.T) {
	root := NewRoot()
	frac := New(Fraction, Math, "")
	frac.CaptureSelection = true
	frac.Append(Above, New(Ordinary, Math, "a"))
	root.Append(Body, frac)

	inner := frac.Branch(Above)[1]
	if inner.CaptureOwner() != frac {
		t.Error("atom inside a capturing fraction should report it as owner")
	}
	if frac.CaptureOwner() != nil {
		t.Error("the capturing atom itself is not inside a capture selection")
	}
}

func TestBranchesCanonicalOrder(t *testing.T) {
	a := New(Fraction, Math, "")
	a.CreateBranch(Below)
	a.CreateBranch(Above)

	got := a.Branches()
	if len(got) != 2 || got[0] != Above || got[1] != Below {
		t.Errorf("expected [above below], got %v", got)
	}
}

func TestBranchOpposite(t *testing.T) {
	cases := []struct {
		in, want Branch
	}{
		{Above, Below},
		{Below, Above},
		{Superscript, Subscript},
		{Subscript, Superscript},
		{Body, Body},
	}
	for _, tc := range cases {
		if got := tc.in.Opposite(); got != tc.want {
			t.Errorf("%s.Opposite() = %s, want %s", tc.in, got, tc.want)
		}
	}
}
