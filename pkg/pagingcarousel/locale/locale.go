// Package locale translates navigation titles and the badge overflow text.
//
// Titles are used as their own message IDs, so an untranslated title is
// shown as written. Message files are TOML, one per language, named after
// the language tag (active.fr.toml).
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
)

// BadgeOverflowID is the message ID of the text shown for counts above 99.
const BadgeOverflowID = "badge_overflow"

// ErrInvalidLanguage is returned for tags that are not valid BCP 47.
var ErrInvalidLanguage = errors.New("invalid language tag")

//go:embed messages/*.toml
var builtin embed.FS

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger for missing-translation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithoutBuiltinMessages skips the embedded catalog.
func WithoutBuiltinMessages() Option {
	return func(t *Translator) { t.skipBuiltin = true }
}

// Translator resolves messages for one preferred language, falling back to
// English and finally to the message ID itself.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	preferred language.Tag
	logger    *slog.Logger

	skipBuiltin bool
}

// New creates a Translator for lang, e.g. "fr" or "de-CH".
func New(lang string, opts ...Option) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Translator{
		bundle:    bundle,
		preferred: tag,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if !t.skipBuiltin {
		if err := t.loadFS(builtin, "messages"); err != nil {
			return nil, err
		}
	}
	t.refresh()
	return t, nil
}

func (t *Translator) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read message catalog: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := t.bundle.LoadMessageFileFS(fsys, path.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("load message file %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (t *Translator) refresh() {
	t.localizer = i18n.NewLocalizer(t.bundle, t.preferred.String(), language.English.String())
}

// LoadMessageFile adds a TOML message file from disk. Its messages take
// precedence over earlier ones with the same ID.
func (t *Translator) LoadMessageFile(file string) error {
	if _, err := t.bundle.LoadMessageFile(file); err != nil {
		return fmt.Errorf("load message file %s: %w", file, err)
	}
	t.refresh()
	return nil
}

// AddMessages registers translations for lang from ID to text pairs.
func (t *Translator) AddMessages(lang string, messages map[string]string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
	}
	msgs := make([]*i18n.Message, 0, len(messages))
	for id, text := range messages {
		msgs = append(msgs, &i18n.Message{ID: id, Other: text})
	}
	if err := t.bundle.AddMessages(tag, msgs...); err != nil {
		return err
	}
	t.refresh()
	return nil
}

// Language returns the catalog language that best serves the preferred one.
func (t *Translator) Language() language.Tag {
	matcher := language.NewMatcher(t.bundle.LanguageTags())
	_, index, confidence := matcher.Match(t.preferred)
	if confidence == language.No {
		return language.English
	}
	return t.bundle.LanguageTags()[index]
}

// Preferred returns the requested language.
func (t *Translator) Preferred() language.Tag { return t.preferred }

// Translate returns the message for id, or fallback when no catalog has it.
func (t *Translator) Translate(id, fallback string) string {
	if id == "" {
		return fallback
	}
	text, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil || text == "" {
		t.logger.Debug("No translation", "id", id, "language", t.preferred.String())
		return fallback
	}
	return text
}

// Title translates a navigation title.
func (t *Translator) Title(title string) string {
	return t.Translate(title, title)
}

// BadgeOverflow returns the localized overflow text, or fallback.
func (t *Translator) BadgeOverflow(fallback string) string {
	return t.Translate(BadgeOverflowID, fallback)
}

// Items returns a copy of items with translated titles.
func (t *Translator) Items(items []navigation.Item) []navigation.Item {
	out := make([]navigation.Item, len(items))
	for i, item := range items {
		item.Title = t.Title(item.Title)
		out[i] = item
	}
	return out
}

// Settings returns s with a localized badge overflow text.
func (t *Translator) Settings(s navigation.Settings) navigation.Settings {
	s.BadgeOverflowText = t.BadgeOverflow(s.BadgeOverflowText)
	return s
}
