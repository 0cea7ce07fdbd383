package repoinfo

// frameworkChecks is the fixed priority order of dependency keys consulted
// for framework detection. The first key present in either dependency set
// wins.
var frameworkChecks = []struct {
	dep   string
	label string
}{
	{"react", "React"},
	{"next", "Next.js"},
	{"@angular/core", "Angular"},
	{"vue", "Vue.js"},
	{"express", "Express"},
	{"fastify", "Fastify"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"@nestjs/core", "NestJS"},
	{"svelte", "Svelte"},
	{"nuxt", "Nuxt.js"},
}

// DetectFramework inspects dependencies and devDependencies for well-known
// framework packages and returns the first matching label, or "" if none.
func DetectFramework(deps, devDeps map[string]string) string {
	for _, check := range frameworkChecks {
		if _, ok := deps[check.dep]; ok {
			return check.label
		}
		if _, ok := devDeps[check.dep]; ok {
			return check.label
		}
	}
	return ""
}
