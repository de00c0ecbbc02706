package xbps

import "testing"

func noInstalled(pkg string) (string, bool, error) {
	return "", false, nil
}

func TestNameFromPkgver(t *testing.T) {
	tests := []struct {
		pkgver string
		want   string
		ok     bool
	}{
		{"bash-5.2_1", "bash", true},
		{"gtk+3-3.24.43_1", "gtk+3", true},
		{"xbps-triggers-0.130_1", "xbps-triggers", true},
		{"no-version-suffix", "", false},
		{"plainword", "", false},
		{"trailing-", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pkgver, func(t *testing.T) {
			got, ok := NameFromPkgver(tt.pkgver)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NameFromPkgver(%q) = %q, %v; want %q, %v", tt.pkgver, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParsePlan(t *testing.T) {
	text := `
=> Updating repository index...
[*] Synced something
xbps-install: 4 packages will be downloaded

bash-5.2_2 update x86_64 https://repo-default.voidlinux.org/current 9MB 2MB
new-tool-1.0_1 install x86_64 https://repo-default.voidlinux.org/current 1MB 1MB
keepme-2.0_1 configure x86_64 https://repo-default.voidlinux.org/current 0MB 0MB
zsh-5.9_3 update x86_64 https://repo-default.voidlinux.org/current 7MB 2MB
`

	installed := func(pkg string) (string, bool, error) {
		if pkg == "bash" {
			return "bash-5.2_1", true, nil
		}
		if pkg == "zsh" {
			return "zsh-5.9_2", true, nil
		}
		return "", false, nil
	}

	plan, err := ParsePlan(text, installed)
	if err != nil {
		t.Fatalf("ParsePlan() error = %v", err)
	}

	want := []Update{
		{Name: "bash", From: "bash-5.2_1", To: "bash-5.2_2"},
		{Name: "new-tool", From: NotInstalled, To: "new-tool-1.0_1"},
		{Name: "zsh", From: "zsh-5.9_2", To: "zsh-5.9_3"},
	}

	if len(plan) != len(want) {
		t.Fatalf("ParsePlan() = %v, want %v", plan, want)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("plan[%d] = %v, want %v", i, plan[i], want[i])
		}
	}
}

func TestParsePlan_DeduplicatesByName(t *testing.T) {
	text := `
bash-5.2_1 update x86_64 repo 9MB 2MB
bash-5.2_2 update x86_64 repo 9MB 2MB
`
	plan, err := ParsePlan(text, noInstalled)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 1 {
		t.Fatalf("plan = %v, want one entry", plan)
	}
	if plan[0].To != "bash-5.2_2" {
		t.Errorf("dedupe should keep the last occurrence, got %v", plan[0])
	}
}

func TestParsePlan_EmptyOutput(t *testing.T) {
	plan, err := ParsePlan("=> nothing\n", noInstalled)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 0 {
		t.Errorf("plan = %v, want empty", plan)
	}
}
