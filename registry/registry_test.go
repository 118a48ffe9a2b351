package registry

import (
	"sort"
	"testing"
)

func Test_Lookup_KnownKey(t *testing.T) {
	lib, ok := Lookup("react")
	if !ok {
		t.Fatal("expected react in the catalog")
	}
	if lib.Name != "React" {
		t.Errorf("expected display name React, got %q", lib.Name)
	}
	if lib.Repo == "" {
		t.Error("expected a repository for react")
	}
	if lib.Package != "react" {
		t.Errorf("expected package to default to the key, got %q", lib.Package)
	}
}

func Test_Lookup_ExplicitPackageName(t *testing.T) {
	lib, ok := Lookup("prisma")
	if !ok {
		t.Fatal("expected prisma in the catalog")
	}
	if lib.Package != "@prisma/client" {
		t.Errorf("expected explicit package name, got %q", lib.Package)
	}
}

func Test_Lookup_UnknownKey(t *testing.T) {
	if _, ok := Lookup("definitely-not-in-the-catalog"); ok {
		t.Error("expected lookup miss")
	}
}

func Test_Keys_SortedAndNonEmpty(t *testing.T) {
	keys := Keys()
	if len(keys) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}
