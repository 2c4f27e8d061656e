package http_test

import (
	"strings"
	"testing"

	adapterhttp "github.com/RanchoCooper/go-hexagonal/adapter/http"
)

// pass asserts validation passes for the given data/rules.
func pass(t *testing.T, label string, data map[string]string, rules adapterhttp.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		if errs := adapterhttp.Validate(data, rules); errs.Has() {
			t.Errorf("expected PASS, got FAIL — errors: %+v", errs.Bag)
		}
	})
}

// fail asserts validation fails with an error on the given field.
func fail(t *testing.T, label, field string, data map[string]string, rules adapterhttp.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		errs := adapterhttp.Validate(data, rules)
		if !errs.Has() {
			t.Errorf("expected FAIL on field %q, but validation PASSED", field)
			return
		}
		if errs.First(field) == "" {
			t.Errorf("expected error on field %q, but none found. Errors: %+v", field, errs.Bag)
		}
	})
}

func TestValidate_Required(t *testing.T) {
	r := adapterhttp.Rules{"name": "required"}

	pass(t, "non-empty value", map[string]string{"name": "widget"}, r)
	fail(t, "empty string", "name", map[string]string{"name": ""}, r)
	fail(t, "whitespace only", "name", map[string]string{"name": "   "}, r)
	fail(t, "missing key", "name", map[string]string{}, r)
}

func TestValidate_MinMax(t *testing.T) {
	pass(t, "within bounds", map[string]string{"name": "abc"},
		adapterhttp.Rules{"name": "min:2|max:5"})
	fail(t, "too short", "name", map[string]string{"name": "a"},
		adapterhttp.Rules{"name": "min:2"})
	fail(t, "too long", "name", map[string]string{"name": "abcdef"},
		adapterhttp.Rules{"name": "max:5"})
	pass(t, "multibyte counts runes", map[string]string{"name": "héllo"},
		adapterhttp.Rules{"name": "max:5"})
}

func TestValidate_In(t *testing.T) {
	r := adapterhttp.Rules{"driver": "in:memory,redis"}

	pass(t, "allowed value", map[string]string{"driver": "redis"}, r)
	fail(t, "unknown value", "driver", map[string]string{"driver": "mysql"}, r)
}

func TestValidate_SometimesSkipsAbsentField(t *testing.T) {
	pass(t, "absent optional field", map[string]string{},
		adapterhttp.Rules{"name": "sometimes|min:2"})
	fail(t, "present optional field still validated", "name",
		map[string]string{"name": "a"}, adapterhttp.Rules{"name": "sometimes|min:2"})
}

func TestValidate_StopsAtFirstFailurePerField(t *testing.T) {
	errs := adapterhttp.Validate(map[string]string{"name": ""},
		adapterhttp.Rules{"name": "required|min:2"})
	if got := len(errs.Bag["name"]); got != 1 {
		t.Errorf("errors on name = %d, want 1 (later rules must not run)", got)
	}
}

func TestExampleController_OverlongNameRejected(t *testing.T) {
	srv := newServer(t)

	resp, body := doJSON(t, "POST", srv.URL+"/examples",
		`{"name": "`+strings.Repeat("x", 300)+`"}`)
	if resp.StatusCode != 422 {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if _, ok := body["errors"]; !ok {
		t.Errorf("body = %v, want an errors bag", body)
	}
}
