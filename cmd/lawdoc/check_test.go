package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRunCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := writeFile(t, dir, "lease.html", "<p>{{client_name}} {{case_number}} {{current_date}}</p>")
	partial := writeFile(t, dir, "partial.yaml", "client_name: Alice\n")
	full := writeFile(t, dir, "full.yaml", "client_name: Alice\ncase_number: 12\n")
	empty := writeFile(t, dir, "empty.html", "<p>no variables</p>")

	t.Run("lists placeholders with labels", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv()
		if err := runCheck([]string{content}, env); err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"{{client_name}}", "{{case_number}}", "اسم العميل"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout missing %q: %q", want, stdout.String())
			}
		}
		if stderr.Len() != 0 {
			t.Errorf("unexpected warnings: %q", stderr.String())
		}
	})

	t.Run("reports missing values per file", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		if err := runCheck([]string{content, "-V", partial, "-V", full}, env); err != nil {
			t.Fatal(err)
		}
		out := stdout.String()
		if !strings.Contains(out, partial+": no value for case_number") {
			t.Errorf("partial not reported: %q", out)
		}
		if !strings.Contains(out, full+": complete") {
			t.Errorf("current_date must not count as missing: %q", out)
		}
	})

	t.Run("no placeholders", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		if err := runCheck([]string{empty}, env); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), "No placeholders found") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("needs one file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv()
		if err := runCheck(nil, env); !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})
}

func TestWithoutAutoFilled(t *testing.T) {
	t.Parallel()

	in := []string{"client_name", "current_date", "case_number"}
	got := withoutAutoFilled(in)
	if strings.Join(got, ",") != "client_name,case_number" {
		t.Errorf("withoutAutoFilled() = %v", got)
	}
	if strings.Join(in, ",") != "client_name,current_date,case_number" {
		t.Errorf("input modified: %v", in)
	}
}
