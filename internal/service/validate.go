package service

import "strings"

// requireFields collects a field-keyed error for every required value that
// is absent or blank after trimming.
func requireFields(values map[string]string, required []string) map[string]string {
	errs := map[string]string{}
	for _, field := range required {
		if strings.TrimSpace(values[field]) == "" {
			errs[field] = field + " is required"
		}
	}
	return errs
}

// validEmail applies the deliberately loose shape check the intake forms
// use: an email must contain both "@" and ".". Not RFC compliant.
func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
