package ingredient

import (
	"sort"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"小寫去空白", "  Tomato  ", "tomato"},
		{"同義詞對照", "Bell Pepper", "capsicum"},
		{"青辣椒", "green chilli", "chilli"},
		{"紅辣椒", "RED CHILLI", "chilli"},
		{"蔥", "spring onion", "onion"},
		{"香菜", "Cilantro", "coriander"},
		{"茄子", "eggplant", "brinjal"},
		{"未知名稱原樣保留", "paneer", "paneer"},
		{"空字串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.raw); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeSetSemantics(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "同義詞合併後去重",
			raw:  []string{"Scallion", "spring onion", "onion"},
			want: []string{"onion"},
		},
		{
			name: "混合列表",
			raw:  []string{"Tomato", "bell pepper", "CAPSICUM", "rice"},
			want: []string{"capsicum", "rice", "tomato"},
		},
		{
			name: "空列表",
			raw:  []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize(%v) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Normalize(%v) = %v, want %v", tt.raw, got, tt.want)
					break
				}
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := []string{"Bell Pepper", "cilantro", "Tomato", "red chilli"}

	once := Normalize(raw)
	twice := Normalize(once)

	sort.Strings(once)
	sort.Strings(twice)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %v vs %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("normalization not idempotent: %v vs %v", once, twice)
			break
		}
	}
}

func TestNormalizeOrderIndependent(t *testing.T) {
	a := NormalizeSet([]string{"tomato", "Bell Pepper", "rice"})
	b := NormalizeSet([]string{"rice", "capsicum", "TOMATO"})

	if len(a) != len(b) {
		t.Fatalf("sets differ in size: %d vs %d", len(a), len(b))
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			t.Errorf("missing %q in second set", name)
		}
	}
}
