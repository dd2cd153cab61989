package models

import "github.com/scylladb/go-set/strset"

// InstalledSet holds the Debian package names found installed
type InstalledSet struct {
	pkgs *strset.Set
}

// NewInstalledSet creates an empty InstalledSet
func NewInstalledSet() InstalledSet {
	return InstalledSet{pkgs: strset.New()}
}

// Mark records pkg as installed
func (s InstalledSet) Mark(pkg string) {
	s.pkgs.Add(pkg)
}

// Has returns true if pkg was marked installed
func (s InstalledSet) Has(pkg string) bool {
	return s.pkgs != nil && s.pkgs.Has(pkg)
}

// Len returns the number of installed packages
func (s InstalledSet) Len() int {
	if s.pkgs == nil {
		return 0
	}
	return s.pkgs.Size()
}

// Entry is a Record joined with its installation status, ready for display
type Entry struct {
	Record
	Installed bool
}

// Status returns the display status column
func (e Entry) Status() string {
	if e.Installed {
		return "installed"
	}
	return "--"
}

// Project joins records with the installed set, preserving record order
func Project(records []Record, installed InstalledSet) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{Record: r, Installed: installed.Has(r.Package)})
	}
	return entries
}
