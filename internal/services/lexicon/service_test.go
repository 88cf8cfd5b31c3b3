package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LexiconServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *service
}

func (s *LexiconServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := New(&Config{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
}

func TestLexiconServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LexiconServiceTestSuite))
}

func (s *LexiconServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *LexiconServiceTestSuite) TestRandomWordReturnsAcceptedWordOfLength() {
	for i := 0; i < 50; i++ {
		out, err := s.service.RandomWord(s.ctx, &RandomWordInput{Length: 5})
		s.Require().NoError(err)
		s.Len(out.Word, 5)
		s.Equal(normalize(out.Word), out.Word)

		valid, err := s.service.ValidateWord(s.ctx, &ValidateWordInput{Word: out.Word})
		s.Require().NoError(err)
		s.True(valid.Valid, out.Word)
	}
}

func (s *LexiconServiceTestSuite) TestRandomWordIsDeterministicWithSeed() {
	other, err := New(&Config{Seed: 42})
	s.Require().NoError(err)

	for i := 0; i < 10; i++ {
		a, err := s.service.RandomWord(s.ctx, &RandomWordInput{Length: 5})
		s.Require().NoError(err)
		b, err := other.RandomWord(s.ctx, &RandomWordInput{Length: 5})
		s.Require().NoError(err)
		s.Equal(a.Word, b.Word)
	}
}

func (s *LexiconServiceTestSuite) TestRandomWordErrors() {
	_, err := s.service.RandomWord(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.RandomWord(s.ctx, &RandomWordInput{Length: 0})
	s.ErrorIs(err, ErrInvalidLength)

	_, err = s.service.RandomWord(s.ctx, &RandomWordInput{Length: 12})
	s.ErrorIs(err, ErrNoWords)
}

func (s *LexiconServiceTestSuite) TestValidateWord() {
	tests := []struct {
		word  string
		valid bool
	}{
		{word: "CRANE", valid: true},
		{word: "crane", valid: true},
		{word: "EERIE", valid: true},
		{word: "ZZZZZ", valid: false},
		{word: "", valid: false},
	}

	for _, tt := range tests {
		out, err := s.service.ValidateWord(s.ctx, &ValidateWordInput{Word: tt.word})
		s.Require().NoError(err)
		s.Equal(tt.valid, out.Valid, tt.word)
	}
}

func (s *LexiconServiceTestSuite) TestEmbeddedListsAcceptCommonGuesses() {
	for _, word := range []string{"SLATE", "ADIEU", "AUDIO", "STARE", "CRAZY", "PIZZA", "WORLD", "GRACE", "TRACE"} {
		out, err := s.service.ValidateWord(s.ctx, &ValidateWordInput{Word: word})
		s.Require().NoError(err)
		s.True(out.Valid, word)
	}
	s.Greater(len(s.service.allowed), 2000)
}

func (s *LexiconServiceTestSuite) TestGetDefinition() {
	out, err := s.service.GetDefinition(s.ctx, &GetDefinitionInput{Word: "crane"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Definition)
	s.NotEmpty(out.Definition.Meanings)
	s.NotEmpty(out.Definition.Examples)

	out, err = s.service.GetDefinition(s.ctx, &GetDefinitionInput{Word: "ZEBRA"})
	s.Require().NoError(err)
	s.Nil(out.Definition)
}

func (s *LexiconServiceTestSuite) TestOverrideFiles() {
	dir := s.T().TempDir()

	answers := filepath.Join(dir, "answers.txt")
	s.Require().NoError(os.WriteFile(answers, []byte("# comment\nplumb\n\nno-way\nabc1e\n"), 0o644))

	allowed := filepath.Join(dir, "allowed.txt")
	s.Require().NoError(os.WriteFile(allowed, []byte("thumb\n"), 0o644))

	definitions := filepath.Join(dir, "definitions.json")
	s.Require().NoError(os.WriteFile(definitions, []byte(`{"plumb":{"meanings":["Exactly vertical."],"examples":[]}}`), 0o644))

	svc, err := New(&Config{
		AnswersFile:     answers,
		AllowedFile:     allowed,
		DefinitionsFile: definitions,
		Seed:            1,
	})
	s.Require().NoError(err)

	word, err := svc.RandomWord(s.ctx, &RandomWordInput{Length: 5})
	s.Require().NoError(err)
	s.Equal("PLUMB", word.Word)

	valid, err := svc.ValidateWord(s.ctx, &ValidateWordInput{Word: "THUMB"})
	s.Require().NoError(err)
	s.True(valid.Valid)

	valid, err = svc.ValidateWord(s.ctx, &ValidateWordInput{Word: "CRANE"})
	s.Require().NoError(err)
	s.False(valid.Valid)

	def, err := svc.GetDefinition(s.ctx, &GetDefinitionInput{Word: "PLUMB"})
	s.Require().NoError(err)
	s.Require().NotNil(def.Definition)
	s.Equal([]string{"Exactly vertical."}, def.Definition.Meanings)
}

func (s *LexiconServiceTestSuite) TestMissingOverrideFile() {
	_, err := New(&Config{AnswersFile: filepath.Join(s.T().TempDir(), "missing.txt")})
	s.Error(err)
}

func (s *LexiconServiceTestSuite) TestIsAlpha() {
	s.True(IsAlpha("Crane"))
	s.False(IsAlpha("cr4ne"))
	s.False(IsAlpha("héllo"))
	s.False(IsAlpha(""))
}
