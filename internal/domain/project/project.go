// Package project defines the Project entity created by form submissions.
package project

import (
	"strconv"
	"time"
)

// Project is a submitted form entry. Projects are created by the project
// store and never change afterwards.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
	CreatedAt   time.Time
}

// Persons describes the team size for display, e.g. "1 person" or "3 persons".
func (p *Project) Persons() string {
	if p.People == 1 {
		return "1 person"
	}
	return strconv.Itoa(p.People) + " persons"
}

// Filter returns the projects whose status equals s, preserving order.
// The result never aliases the input slice.
func Filter(projects []Project, s Status) []Project {
	out := make([]Project, 0, len(projects))
	for i := range projects {
		if projects[i].Status == s {
			out = append(out, projects[i])
		}
	}
	return out
}
