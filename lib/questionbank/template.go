package questionbank

import (
	"fntp-backend/models"

	"github.com/pkg/errors"
)

const (
	TemplateFull      = "full"
	TemplateEssential = "essential"

	bankVersion = "2024.2"
)

// Template is an ordered, versioned question set. Module totals are derived
// from the question list.
type Template struct {
	name      string
	version   string
	modules   []models.FunctionalModule
	byModule  map[models.FunctionalModule][]Question
	byID      map[string]Question
	positions map[string]int
	total     int
}

type ClusterRef struct {
	Severity  string
	Frequency string
}

func NewTemplate(name, version string, questions []Question) (*Template, error) {
	tpl := &Template{
		name:      name,
		version:   version,
		modules:   models.ModuleSequence,
		byModule:  map[models.FunctionalModule][]Question{},
		byID:      map[string]Question{},
		positions: map[string]int{},
	}
	known := map[models.FunctionalModule]bool{}
	for _, module := range tpl.modules {
		known[module] = true
	}
	for _, q := range questions {
		if q.ID == "" {
			return nil, errors.New("question without id")
		}
		if _, ok := tpl.byID[q.ID]; ok {
			return nil, errors.Errorf("duplicate question id %s", q.ID)
		}
		if !known[q.Module] {
			return nil, errors.Errorf("question %s has unknown module %q", q.ID, q.Module)
		}
		tpl.positions[q.ID] = len(tpl.byModule[q.Module])
		tpl.byModule[q.Module] = append(tpl.byModule[q.Module], q)
		tpl.byID[q.ID] = q
		tpl.total++
	}
	return tpl, nil
}

func (t *Template) Name() string {
	return t.name
}

func (t *Template) Version() string {
	return t.version
}

func (t *Template) Modules() []models.FunctionalModule {
	return t.modules
}

func (t *Template) FirstModule() models.FunctionalModule {
	return t.modules[0]
}

// QuestionsByModule returns the ordered questions of a module, empty for unknown modules.
func (t *Template) QuestionsByModule(module models.FunctionalModule) []Question {
	return t.byModule[module]
}

func (t *Template) Question(id string) (Question, bool) {
	q, ok := t.byID[id]
	return q, ok
}

// Position is the index of the question within its module.
func (t *Template) Position(id string) (int, bool) {
	pos, ok := t.positions[id]
	return pos, ok
}

func (t *Template) ModuleTotal(module models.FunctionalModule) int {
	return len(t.byModule[module])
}

func (t *Template) Total() int {
	return t.total
}

func (t *Template) HasModule(module models.FunctionalModule) bool {
	for _, m := range t.modules {
		if m == module {
			return true
		}
	}
	return false
}

// NextModule returns the module following the given one in the fixed sequence.
func (t *Template) NextModule(module models.FunctionalModule) (models.FunctionalModule, bool) {
	for i, m := range t.modules {
		if m == module && i+1 < len(t.modules) {
			return t.modules[i+1], true
		}
	}
	return "", false
}

// ClusterRefs maps each severity cluster to the question ids it depends on.
func (t *Template) ClusterRefs() map[ClusterKey]ClusterRef {
	refs := map[ClusterKey]ClusterRef{}
	for _, module := range t.modules {
		for _, q := range t.byModule[module] {
			if q.Cluster == "" {
				continue
			}
			ref := refs[q.Cluster]
			switch q.ClusterRole {
			case RoleFrequency:
				ref.Frequency = q.ID
			default:
				ref.Severity = q.ID
			}
			refs[q.Cluster] = ref
		}
	}
	return refs
}

var templates = map[string]*Template{}

func init() {
	full := mustTemplate(TemplateFull, allQuestions())
	essential := make([]Question, 0, 32)
	for _, q := range allQuestions() {
		if q.Essential {
			essential = append(essential, q)
		}
	}
	templates[TemplateFull] = full
	templates[TemplateEssential] = mustTemplate(TemplateEssential, essential)
}

func mustTemplate(name string, questions []Question) *Template {
	tpl, err := NewTemplate(name, bankVersion, questions)
	if err != nil {
		panic(errors.Wrapf(err, "question bank template %s", name))
	}
	return tpl
}

func allQuestions() []Question {
	all := make([]Question, 0, 64)
	all = append(all, screeningQuestions...)
	all = append(all, assimilationQuestions...)
	all = append(all, defenseRepairQuestions...)
	all = append(all, energyQuestions...)
	all = append(all, biotransformationQuestions...)
	all = append(all, transportQuestions...)
	all = append(all, communicationQuestions...)
	all = append(all, structuralQuestions...)
	return all
}

func ByName(name string) (*Template, error) {
	tpl, ok := templates[name]
	if !ok {
		return nil, errors.Errorf("unknown assessment template %q", name)
	}
	return tpl, nil
}

func Full() *Template {
	return templates[TemplateFull]
}

func Essential() *Template {
	return templates[TemplateEssential]
}

func Names() []string {
	return []string{TemplateFull, TemplateEssential}
}
