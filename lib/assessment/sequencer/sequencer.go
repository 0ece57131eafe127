package sequencer

import (
	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrLastAnsweredNotInModule is returned in strict mode when the most recent
// answer of a module can not be located in the module question list.
var ErrLastAnsweredNotInModule = errors.New("last answered question not found in module")

type Result struct {
	Question      *questionbank.Question
	Module        models.FunctionalModule
	ModuleChanged bool
	Completed     bool
}

type Sequencer struct {
	tpl    *questionbank.Template
	strict bool
}

func New(tpl *questionbank.Template, strict bool) *Sequencer {
	return &Sequencer{
		tpl:    tpl,
		strict: strict,
	}
}

func (s *Sequencer) Template() *questionbank.Template {
	return s.tpl
}

// Next walks modules starting from current and returns the next question to
// present. Exhausted modules, including empty ones, advance to the following
// module; exhausting the last one completes the assessment.
func (s *Sequencer) Next(current models.FunctionalModule, responses []dbmodels.AssessmentResponse) (Result, error) {
	if current == "" {
		current = s.tpl.FirstModule()
	}
	if !s.tpl.HasModule(current) {
		return Result{}, errors.Errorf("unknown module %q", current)
	}
	module := current
	for {
		question, err := s.nextInModule(module, responses)
		if err != nil {
			return Result{}, err
		}
		if question != nil {
			return Result{
				Question:      question,
				Module:        module,
				ModuleChanged: module != current,
			}, nil
		}
		next, ok := s.tpl.NextModule(module)
		if !ok {
			return Result{
				Module:        module,
				ModuleChanged: module != current,
				Completed:     true,
			}, nil
		}
		module = next
	}
}

func (s *Sequencer) nextInModule(module models.FunctionalModule, responses []dbmodels.AssessmentResponse) (*questionbank.Question, error) {
	questions := s.tpl.QuestionsByModule(module)
	if len(questions) == 0 {
		return nil, nil
	}
	answered := map[string]bool{}
	var last *dbmodels.AssessmentResponse
	lastPos := -1
	for i := range responses {
		rec := &responses[i]
		if rec.QuestionModule != module {
			continue
		}
		answered[rec.QuestionID] = true
		pos := s.position(module, rec.QuestionID)
		if last == nil || rec.AnsweredAt.After(last.AnsweredAt) ||
			(rec.AnsweredAt.Equal(last.AnsweredAt) && pos > lastPos) {
			last = rec
			lastPos = pos
		}
	}
	if last == nil {
		return &questions[0], nil
	}
	if lastPos < 0 {
		if s.strict {
			return nil, errors.Wrapf(ErrLastAnsweredNotInModule, "question %s, module %s", last.QuestionID, module)
		}
		log.
			WithField("module", module).
			WithField("question_id", last.QuestionID).
			WithField("template", s.tpl.Name()).
			Warn("последний отвеченный вопрос не найден в модуле, модуль начат с первого неотвеченного вопроса")
		return firstUnanswered(questions, answered, 0), nil
	}
	return firstUnanswered(questions, answered, lastPos+1), nil
}

func (s *Sequencer) position(module models.FunctionalModule, questionID string) int {
	q, ok := s.tpl.Question(questionID)
	if !ok || q.Module != module {
		return -1
	}
	pos, _ := s.tpl.Position(questionID)
	return pos
}

func firstUnanswered(questions []questionbank.Question, answered map[string]bool, from int) *questionbank.Question {
	for i := from; i < len(questions); i++ {
		if !answered[questions[i].ID] {
			return &questions[i]
		}
	}
	return nil
}
