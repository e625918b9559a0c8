package models

import "testing"

func TestProductMargin(t *testing.T) {
	p := Product{Price: 20, Cost: 8}
	if got := p.Margin(); got != 0.6 {
		t.Errorf("Margin = %v, want 0.6", got)
	}

	free := Product{Price: 0, Cost: 5}
	if got := free.Margin(); got != 0 {
		t.Errorf("Margin with zero price = %v, want 0", got)
	}
}
