package usecase

import (
	"context"
	"errors"

	"hirechain/internal/domain/skills"
	"hirechain/internal/extract"
)

type SkillUsecase interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
	ExtractFromFile(ctx context.Context, data []byte, mimeType string) ([]string, error)
}

type Skill struct {
	extractor *skills.Extractor
	files     extract.Extractor
}

func NewSkillUsecase(extractor *skills.Extractor, files extract.Extractor) *Skill {
	return &Skill{extractor: extractor, files: files}
}

// ExtractSkills never fails on degenerate input; empty or unmatched text
// yields an empty list.
func (u *Skill) ExtractSkills(_ context.Context, text string) ([]string, error) {
	return u.extractor.Extract(text), nil
}

func (u *Skill) ExtractFromFile(ctx context.Context, data []byte, mimeType string) ([]string, error) {
	if u.files == nil {
		return nil, ErrUnsupportedFile
	}
	text, err := u.files.ExtractText(data, mimeType)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return nil, ErrUnsupportedFile
		}
		return nil, ErrInternal
	}
	return u.ExtractSkills(ctx, text)
}
