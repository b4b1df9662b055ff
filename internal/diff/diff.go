// Package diff compares two structural schemas and renders a deterministic
// human-readable report. Only schema shape participates: tables, columns,
// constraints, charset and collation. Row data never does.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"sql-diff/internal/schema"
)

// NoDifferences is the fixed sentinel returned when the two schemas are
// structurally identical.
const NoDifferences = "No structural differences found."

// Compare diffs baseline a against candidate b. Output ordering is fully
// sorted, so repeated runs over the same inputs are byte-identical.
func Compare(a, b *schema.Schema) string {
	var result []string

	removed, added, common := splitNames(tableNames(a), tableNames(b))

	if len(removed) > 0 {
		result = append(result, "Tables present in the first schema but missing from the second:")
		for _, name := range removed {
			result = append(result, "  - "+name)
		}
		result = append(result, "")
	}

	if len(added) > 0 {
		result = append(result, "Tables present in the second schema but missing from the first:")
		for _, name := range added {
			result = append(result, "  + "+name)
		}
		result = append(result, "")
	}

	for _, name := range common {
		block := compareTable(a.Tables[name], b.Tables[name])
		if len(block) > 0 {
			result = append(result, fmt.Sprintf("Differences for table `%s`:", name))
			result = append(result, block...)
			result = append(result, "")
		}
	}

	if len(result) == 0 {
		return NoDifferences
	}
	return strings.Join(result, "\n")
}

func compareTable(a, b *schema.Table) []string {
	var block []string

	if a.Charset != b.Charset {
		block = append(block, fmt.Sprintf("  Charset changed: %s -> %s", orNone(a.Charset), orNone(b.Charset)))
	}
	if a.Collation != b.Collation {
		block = append(block, fmt.Sprintf("  Collation changed: %s -> %s", orNone(a.Collation), orNone(b.Collation)))
	}

	removed, added, common := splitNames(columnNames(a), columnNames(b))

	if len(removed) > 0 {
		block = append(block, "  Columns removed:")
		for _, col := range removed {
			block = append(block, "    - "+col)
		}
	}
	if len(added) > 0 {
		block = append(block, "  Columns added:")
		for _, col := range added {
			block = append(block, fmt.Sprintf("    + %s %s", col, b.Columns[col].DataType))
		}
	}

	for _, name := range common {
		block = append(block, compareColumn(a.Columns[name], b.Columns[name])...)
	}

	block = append(block, compareConstraints(a, b)...)

	return block
}

// compareColumn emits only the fields that differ.
func compareColumn(a, b *schema.Column) []string {
	if a.Equal(b) {
		return nil
	}
	lines := []string{fmt.Sprintf("  Column changed: %s", a.Name)}
	if a.DataType != b.DataType {
		lines = append(lines, fmt.Sprintf("    Type: %s -> %s", a.DataType, b.DataType))
	}
	if a.Nullable != b.Nullable {
		lines = append(lines, fmt.Sprintf("    Nullable: %s -> %s", nullability(a.Nullable), nullability(b.Nullable)))
	}
	if !samePtr(a.Default, b.Default) {
		lines = append(lines, fmt.Sprintf("    Default: %s -> %s", orNonePtr(a.Default), orNonePtr(b.Default)))
	}
	if a.Extra != b.Extra {
		lines = append(lines, fmt.Sprintf("    Extra: %s -> %s", orNone(a.Extra), orNone(b.Extra)))
	}
	return lines
}

// compareConstraints correlates by identity key (kind plus column tuple),
// never by name. A constraint renamed over the same columns shows nothing.
func compareConstraints(a, b *schema.Table) []string {
	setA, setB := a.ConstraintSet(), b.ConstraintSet()

	removed, added, _ := splitNames(sortedKeys(setA), sortedKeys(setB))

	var block []string
	if len(removed) > 0 {
		block = append(block, "  Constraints removed:")
		for _, key := range removed {
			block = append(block, "    - "+setA[key].String())
		}
	}
	if len(added) > 0 {
		block = append(block, "  Constraints added:")
		for _, key := range added {
			block = append(block, "    + "+setB[key].String())
		}
	}
	return block
}

// splitNames partitions two sorted-at-exit name sets into only-in-a,
// only-in-b, and both, each sorted lexicographically.
func splitNames(a, b []string) (removed, added, common []string) {
	inA := toSet(a)
	inB := toSet(b)
	for _, name := range a {
		if inB[name] {
			common = append(common, name)
		} else {
			removed = append(removed, name)
		}
	}
	for _, name := range b {
		if !inA[name] {
			added = append(added, name)
		}
	}
	sort.Strings(removed)
	sort.Strings(added)
	sort.Strings(common)
	return removed, added, common
}

func tableNames(s *schema.Schema) []string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	return names
}

func columnNames(t *schema.Table) []string {
	names := make([]string, 0, len(t.Columns))
	for name := range t.Columns {
		names = append(names, name)
	}
	return names
}

func sortedKeys(m map[string]*schema.Constraint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func nullability(nullable bool) string {
	if nullable {
		return "NULL"
	}
	return "NOT NULL"
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}

func orNonePtr(s *string) string {
	if s == nil {
		return "<none>"
	}
	return *s
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
