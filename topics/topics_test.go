package topics

import "testing"

func TestBankIsComplete(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("topic bank is empty")
	}

	for _, name := range names {
		questions, ok := Get(name)
		if !ok {
			t.Fatalf("topic %q listed but not found", name)
		}
		if len(questions) == 0 {
			t.Errorf("topic %q has no questions", name)
		}
		for i, q := range questions {
			if q.Prompt == "" || q.Answer == "" || q.Explain == "" {
				t.Errorf("topic %q question %d has empty fields: %+v", name, i, q)
			}
		}
	}
}

func TestGetUnknownTopic(t *testing.T) {
	if _, ok := Get("Химия"); ok {
		t.Error("expected lookup of unknown topic to fail")
	}
	if _, ok := Get(""); ok {
		t.Error("expected lookup of empty topic to fail")
	}
}

func TestAcceptsTrimsWhitespace(t *testing.T) {
	q := Question{Answer: "8"}
	for _, submitted := range []string{"8", " 8 ", "  8  ", "\t8\n"} {
		if !q.Accepts(submitted) {
			t.Errorf("Accepts(%q) = false, want true", submitted)
		}
	}
	if q.Accepts("9") {
		t.Error("Accepts(\"9\") = true, want false")
	}
	if q.Accepts("") {
		t.Error("Accepts(\"\") = true, want false")
	}
}

func TestAcceptsFoldsCase(t *testing.T) {
	q := Question{Answer: "цикл"}
	for _, submitted := range []string{"цикл", "Цикл", "ЦИКЛ", " ЦиКл "} {
		if !q.Accepts(submitted) {
			t.Errorf("Accepts(%q) = false, want true", submitted)
		}
	}
	if q.Accepts("циклы") {
		t.Error("expected no partial credit for a longer answer")
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	names := Names()
	names[0] = "mutated"
	if Names()[0] == "mutated" {
		t.Error("Names must not expose internal order slice")
	}
}
