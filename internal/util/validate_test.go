package util

import (
	"strings"
	"testing"
)

func TestValidateDomainName_Valid(t *testing.T) {
	valid := []string{
		"example.se",
		"my-domain.com",
		"a.b.c.se",
		"EXAMPLE.SE",
		"123numeric.nu",
		"xn--rksmrgs-5wao1o.se",
		"räksmörgås.se",
		"exämple.se",
		"www.exämple.se",
	}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateDomainName(name); err != nil {
				t.Errorf("expected %q to be valid, got error: %v", name, err)
			}
		})
	}
}

func TestValidateDomainName_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "no dot", input: "example", wantErr: "at least one period"},
		{name: "empty label", input: "example..se", wantErr: "must not be empty"},
		{name: "trailing dot", input: "example.se.", wantErr: "must not be empty"},
		{name: "leading hyphen", input: "-example.se", wantErr: "start or end with a hyphen"},
		{name: "trailing hyphen", input: "example-.se", wantErr: "start or end with a hyphen"},
		{name: "underscore", input: "ex_ample.se", wantErr: "invalid characters"},
		{name: "space", input: "ex ample.se", wantErr: "invalid characters"},
		{name: "long label", input: strings.Repeat("a", 64) + ".se", wantErr: "at most 63"},
		{name: "too long", input: strings.Repeat("a.", 127) + "se", wantErr: "at most 253"},
		{name: "punycode label too long", input: strings.Repeat("a", 62) + "ä.se", wantErr: "at most 63"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomainName(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q, got nil", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateDomainName_InvalidInternationalisedLabel(t *testing.T) {
	if err := ValidateDomainName("exämple_x.se"); err == nil {
		t.Error("expected error for an underscore in an internationalised label")
	}
}

func TestValidateSubdomainLabel(t *testing.T) {
	for _, label := range []string{"www", "@", "*", "mail-1", "bücher"} {
		if err := ValidateSubdomainLabel(label); err != nil {
			t.Errorf("expected %q to be valid, got error: %v", label, err)
		}
	}
	for _, label := range []string{"", "a.b", "-x", "**"} {
		if err := ValidateSubdomainLabel(label); err == nil {
			t.Errorf("expected %q to be invalid", label)
		}
	}
}
