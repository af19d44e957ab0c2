package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"telegram-blackout-bot/internal/domain"
	"telegram-blackout-bot/internal/domain/model"
	"telegram-blackout-bot/internal/domain/ports/adapter"
	"telegram-blackout-bot/internal/domain/ports/provider"
	"telegram-blackout-bot/internal/infra/i18n"
	"telegram-blackout-bot/internal/infra/logging"
)

// Interaction is one parsed inbound button press / command. Callback data
// is parsed exactly once at the boundary; handlers switch exhaustively on
// the concrete type.
type Interaction interface{ isInteraction() }

type RootSelect struct{}

type CitySelect struct{ City string }

type GroupSelect struct{ City, Group string }

func (RootSelect) isInteraction()  {}
func (CitySelect) isInteraction()  {}
func (GroupSelect) isInteraction() {}

const (
	cbRoot        = "root"
	cbCityPrefix  = "city:"
	cbGroupPrefix = "group:"
)

// ParseInteraction decodes a callback payload. Malformed or unknown data
// returns domain.ErrBadCallback; the caller drops it without crashing.
func ParseInteraction(data string) (Interaction, error) {
	data = strings.TrimSpace(data)
	switch {
	case data == cbRoot:
		return RootSelect{}, nil
	case strings.HasPrefix(data, cbCityPrefix):
		key := strings.TrimPrefix(data, cbCityPrefix)
		if key == "" || strings.Contains(key, ":") {
			return nil, fmt.Errorf("%w: %q", domain.ErrBadCallback, data)
		}
		return CitySelect{City: key}, nil
	case strings.HasPrefix(data, cbGroupPrefix):
		parts := strings.SplitN(data, ":", 3)
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrBadCallback, data)
		}
		return GroupSelect{City: parts[1], Group: parts[2]}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrBadCallback, data)
}

// View is one rendered response: message text plus its keyboard.
type View struct {
	Text   string
	Markup adapter.ReplyMarkup
}

// NavigationUC drives the stateless request/response cycle: every inbound
// interaction maps to exactly one View. The current "state" lives in the
// callback data, never in the process.
type NavigationUC struct {
	provider provider.ScheduleProvider
	tr       *i18n.Translator
	log      *zerolog.Logger
}

func NewNavigationUC(p provider.ScheduleProvider, tr *i18n.Translator, log *zerolog.Logger) (*NavigationUC, error) {
	if p == nil {
		return nil, errors.New("schedule provider is nil")
	}
	if tr == nil {
		return nil, errors.New("translator is nil")
	}
	if log == nil {
		return nil, errors.New("logger is nil")
	}
	return &NavigationUC{provider: p, tr: tr, log: log}, nil
}

// Handle dispatches a parsed interaction to its view builder.
func (uc *NavigationUC) Handle(ctx context.Context, in Interaction) View {
	switch v := in.(type) {
	case CitySelect:
		return uc.CityView(ctx, v.City)
	case GroupSelect:
		return uc.GroupView(ctx, v.City, v.Group)
	default:
		return uc.RootView()
	}
}

// RootView lists the registry cities, one button per city.
func (uc *NavigationUC) RootView() View {
	rows := make([][]adapter.Button, 0, len(model.Cities))
	for _, c := range model.Cities {
		rows = append(rows, []adapter.Button{{Text: c.Name, Data: cbCityPrefix + c.Key}})
	}
	return View{
		Text:   uc.tr.T("choose_city"),
		Markup: adapter.ReplyMarkup{Buttons: rows},
	}
}

// groupsPerRow is the keyboard wrap width for group buttons.
const groupsPerRow = 3

// CityView fetches the city's document and lists its groups. Groups are
// discovered per request: they are whatever top-level keys the document
// carries.
func (uc *NavigationUC) CityView(ctx context.Context, cityKey string) View {
	doc, err := uc.provider.Fetch(ctx, cityKey)
	if err != nil {
		logging.With(ctx, uc.log).Warn().Err(err).Str("city", cityKey).Msg("city view fetch failed")
		return View{Text: uc.tr.T("error_fetch"), Markup: uc.RootView().Markup}
	}

	groups := make([]string, 0, len(doc))
	for g := range doc {
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return View{Text: uc.tr.T("no_groups"), Markup: uc.RootView().Markup}
	}
	sort.Strings(groups)

	rows := make([][]adapter.Button, 0, len(groups)/groupsPerRow+2)
	var row []adapter.Button
	for _, g := range groups {
		row = append(row, adapter.Button{Text: g, Data: cbGroupPrefix + cityKey + ":" + g})
		if len(row) == groupsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []adapter.Button{{Text: uc.tr.T("back_to_cities"), Data: cbRoot}})

	cityName := cityKey
	if c, ok := model.CityByKey(cityKey); ok {
		cityName = c.Name
	}
	return View{
		Text:   uc.tr.T("choose_group", cityName),
		Markup: adapter.ReplyMarkup{Buttons: rows},
	}
}

// GroupView fetches the city's document and renders one group's schedule.
// A failed fetch or a missing group id yields an error view that stays
// navigable: retry the same group or go back to the city list.
func (uc *NavigationUC) GroupView(ctx context.Context, cityKey, groupID string) View {
	city, ok := model.CityByKey(cityKey)
	if !ok {
		logging.With(ctx, uc.log).Warn().Str("city", cityKey).Msg("group view for unknown city")
		return uc.groupErrorView(cityKey, groupID)
	}

	doc, err := uc.provider.Fetch(ctx, cityKey)
	if err != nil {
		logging.With(ctx, uc.log).Warn().Err(err).Str("city", cityKey).Str("group", groupID).Msg("group view fetch failed")
		return uc.groupErrorView(cityKey, groupID)
	}

	gs, ok := doc[groupID]
	if !ok {
		logging.With(ctx, uc.log).Warn().Err(domain.ErrUnknownGroup).Str("city", cityKey).Str("group", groupID).Msg("group absent from document")
		return uc.groupErrorView(cityKey, groupID)
	}

	markup := adapter.ReplyMarkup{
		Buttons: [][]adapter.Button{
			{{Text: uc.tr.T("refresh"), Data: cbGroupPrefix + cityKey + ":" + groupID}},
			{{Text: uc.tr.T("change_group"), Data: cbCityPrefix + cityKey}},
		},
	}
	return View{Text: uc.renderGroup(city, groupID, gs), Markup: markup}
}

func (uc *NavigationUC) groupErrorView(cityKey, groupID string) View {
	return View{
		Text: uc.tr.T("error_group"),
		Markup: adapter.ReplyMarkup{
			Buttons: [][]adapter.Button{
				{{Text: uc.tr.T("refresh"), Data: cbGroupPrefix + cityKey + ":" + groupID}},
				{{Text: uc.tr.T("back_to_cities"), Data: cbRoot}},
			},
		},
	}
}
