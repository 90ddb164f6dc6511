package domain

import "time"

// sampleUploadedAt keeps the seeded fixtures stable across restarts.
var sampleUploadedAt = time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

// SampleProjects is the fixed demo project set shown before any project
// has been created. The list itself is never mutated: deleting a sample
// records its id in a separate exclusion set, so clearing that set makes
// the fixture reappear.
var SampleProjects = []Project{
	{
		ID:        "1",
		Name:      "Bangladesh : Flood and River-bank Erosion Risk Management Investment Program",
		Number:    "51-01",
		Files:     sampleFiles(),
		CreatedAt: sampleUploadedAt,
		UpdatedAt: sampleUploadedAt,
	},
	{
		ID:        "2",
		Name:      "Indonesia : Flood Management in North Java Project",
		Number:    "51-02",
		CreatedAt: sampleUploadedAt,
		UpdatedAt: sampleUploadedAt,
	},
	{
		ID:        "3",
		Name:      "Vietnam : Mekong Delta Climate Resilience Project",
		Number:    "51-03",
		CreatedAt: sampleUploadedAt,
		UpdatedAt: sampleUploadedAt,
	},
	{
		ID:        "4",
		Name:      "Philippines : Metro Manila Flood Management Project",
		Number:    "51-04",
		CreatedAt: sampleUploadedAt,
		UpdatedAt: sampleUploadedAt,
	},
}

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func sampleFiles() []AttachedFile {
	return []AttachedFile{
		{
			ID:         "sample-1",
			Name:       "Project Concept Note.docx",
			Size:       1024000,
			Type:       docxMIME,
			DataURL:    "data:" + docxMIME + ";base64,sample",
			Category:   "project-concept",
			UploadedAt: sampleUploadedAt,
		},
		{
			ID:         "sample-2",
			Name:       "Detailed Feasibility Study Report.docx",
			Size:       2048000,
			Type:       docxMIME,
			DataURL:    "data:" + docxMIME + ";base64,sample",
			Category:   "feasibility-study",
			UploadedAt: sampleUploadedAt,
		},
	}
}

// SampleProject returns the seeded fixture with the given id.
func SampleProject(id string) (Project, bool) {
	for _, p := range SampleProjects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
