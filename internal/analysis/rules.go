package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// The project SDK lives under the ProjectRootManager component, in the
// option named project-jdk-name (IntelliJ-style misc.xml layout).
const (
	rootManagerComponent = "ProjectRootManager"
	jdkNameOptionPath    = "./option[@name='project-jdk-name']"
)

var (
	// Digits, optionally one decimal point and more digits: "4", "3.8".
	versionPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// Anything outside word characters, whitespace, and parentheses.
	specialCharPattern = regexp.MustCompile(`[^\w\s()]`)
	// "Python <major>.<minor>", components captured separately so the
	// comparison is numeric per component ("3.10" is newer than "3.8").
	sdkVersionPattern = regexp.MustCompile(`Python (\d+)\.(\d+)`)
)

// Result is the output of one rule evaluation: the findings in evaluation
// order and the total score deduction they carry.
type Result struct {
	Issues    []Issue
	Deduction int
}

func (r *Result) add(p Penalties, kind Kind, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Tag:     kind.Tag(),
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
	r.Deduction += p.penaltyFor(kind)
}

// A Rule inspects the parsed document and yields findings plus their
// deductions. Rules are pure: a nil root (load failure) yields an empty
// result.
type Rule func(root *etree.Element, cfg Config) Result

// CheckVersionFormat verifies the root element's version attribute is plain
// digits with at most one decimal point. An absent attribute is fine.
func CheckVersionFormat(root *etree.Element, cfg Config) Result {
	var res Result
	if root == nil {
		return res
	}

	version := root.SelectAttrValue("version", "")
	if version != "" && !versionPattern.MatchString(version) {
		res.add(cfg.Penalties, KindInvalidVersionFormat,
			"root version %q is not plain digits with an optional decimal point (expected forms like 4 or 3.8)", version)
	}
	return res
}

// CheckSDKNaming flags SDK names containing characters outside word
// characters, whitespace, and parentheses. A missing ProjectRootManager
// component or project-jdk-name option is vacuously fine.
func CheckSDKNaming(root *etree.Element, cfg Config) Result {
	var res Result
	if root == nil {
		return res
	}

	for _, name := range sdkNames(root) {
		if specialCharPattern.MatchString(name) {
			res.add(cfg.Penalties, KindSDKSpecialChars,
				"SDK name %q contains special characters (use only letters, digits, spaces, and parentheses)", name)
		}
	}
	return res
}

// DetectDuplicates flags top-level component entries that repeat a name
// already seen, and entries with no name attribute at all. The first
// occurrence of a name is never flagged; document order decides which
// occurrence is first. Nameless entries do not participate in duplicate
// tracking.
func DetectDuplicates(root *etree.Element, cfg Config) Result {
	var res Result
	if root == nil {
		return res
	}

	seen := make(map[string]bool)
	for _, component := range root.SelectElements("component") {
		name := component.SelectAttrValue("name", "")
		if name == "" {
			res.add(cfg.Penalties, KindMissingName,
				"component entry has no name attribute")
			continue
		}
		if seen[name] {
			res.add(cfg.Penalties, KindDuplicateComponent,
				"duplicate component entry %q (merge entries sharing a name)", name)
			continue
		}
		seen[name] = true
	}
	return res
}

// CheckCompatibility validates the declared Python SDK version against the
// configured minimum. Values without "Python" in them are ignored.
func CheckCompatibility(root *etree.Element, cfg Config) Result {
	var res Result
	if root == nil {
		return res
	}

	for _, name := range sdkNames(root) {
		if !strings.Contains(name, "Python") {
			continue
		}
		m := sdkVersionPattern.FindStringSubmatch(name)
		if m == nil {
			res.add(cfg.Penalties, KindUnparseableVersion,
				"cannot extract a Python version from SDK name %q", name)
			continue
		}
		major, errMajor := strconv.Atoi(m[1])
		minor, errMinor := strconv.Atoi(m[2])
		if errMajor != nil || errMinor != nil {
			res.add(cfg.Penalties, KindUnparseableVersion,
				"cannot parse Python version %q.%q in SDK name %q", m[1], m[2], name)
			continue
		}
		if major < cfg.MinSDKMajor || (major == cfg.MinSDKMajor && minor < cfg.MinSDKMinor) {
			res.add(cfg.Penalties, KindVersionTooLow,
				"Python %d.%d is below the minimum supported version %s", major, minor, cfg.MinSDKVersion())
		}
	}
	return res
}

// sdkNames collects the project-jdk-name option values from every
// ProjectRootManager component, in document order.
func sdkNames(root *etree.Element) []string {
	var names []string
	for _, component := range root.SelectElements("component") {
		if component.SelectAttrValue("name", "") != rootManagerComponent {
			continue
		}
		option := component.FindElement(jdkNameOptionPath)
		if option == nil {
			continue
		}
		if value := option.SelectAttrValue("value", ""); value != "" {
			names = append(names, value)
		}
	}
	return names
}
