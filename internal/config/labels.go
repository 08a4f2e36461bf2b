package config

// Labels holds the fixed dictionaries that map form option identifiers to
// their human-readable display labels. The maps are built once at startup
// and never mutated afterwards.
type Labels struct {
	services     map[string]string
	projectTypes map[string]string
	timelines    map[string]string
	referrals    map[string]string
}

// DefaultLabels returns the label dictionaries for the current form options.
func DefaultLabels() *Labels {
	return &Labels{
		services: map[string]string{
			"landscape":     "Landscape Design",
			"irrigation":    "Irrigation Repair & Service",
			"maintenance":   "Commercial Maintenance",
			"mowing":        "Lawn Care & Mowing",
			"fertilization": "Fertilization & Weed Control",
			"cleanup":       "Yard Cleanup",
			"lighting":      "Low Volt Lighting",
			"snow":          "Commercial Snow Removal",
		},
		projectTypes: map[string]string{
			"new":         "New Landscape",
			"renovation":  "Landscape Renovation",
			"maintenance": "Ongoing Maintenance",
			"seasonal":    "Seasonal Service",
			"other":       "Other",
		},
		timelines: map[string]string{
			"immediate": "Immediate (0-1 month)",
			"soon":      "Soon (1-3 months)",
			"future":    "Future (3-6 months)",
			"planning":  "Just Planning (6+ months)",
		},
		referrals: map[string]string{
			"referral": "Referral",
			"search":   "Search Engine",
			"social":   "Social Media",
			"ad":       "Advertisement",
			"other":    "Other",
		},
	}
}

// Service maps a service identifier to its display label. Unknown
// identifiers are returned unchanged.
func (l *Labels) Service(id string) string {
	return lookup(l.services, id)
}

// ProjectType maps a project type identifier to its display label.
func (l *Labels) ProjectType(id string) string {
	return lookup(l.projectTypes, id)
}

// Timeline maps a timeline identifier to its display label.
func (l *Labels) Timeline(id string) string {
	return lookup(l.timelines, id)
}

// Referral maps a referral source identifier to its display label.
func (l *Labels) Referral(id string) string {
	return lookup(l.referrals, id)
}

func lookup(m map[string]string, id string) string {
	if label, ok := m[id]; ok {
		return label
	}
	return id
}
