package serviceImp

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"bintrack/entities"
	"bintrack/pkg/option/repository"
	"bintrack/pkg/option/service"
)

type optionSvc struct{ repo repository.OptionRepository }

func New(repo repository.OptionRepository) service.OptionService {
	return &optionSvc{repo: repo}
}

func (s *optionSvc) AddOption(field, value string) (bool, error) {
	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)
	if !entities.IsDropdownField(field) {
		return false, fmt.Errorf("unknown dropdown field %q", field)
	}
	if value == "" {
		return false, fmt.Errorf("value is required")
	}
	created, err := s.repo.Add(field, value)
	if err != nil {
		return false, fmt.Errorf("add option %s=%s: %w", field, value, err)
	}
	if created {
		log.Info().Str("field", field).Str("value", value).Msg("dropdown option added")
	}
	return created, nil
}

func (s *optionSvc) GroupedOptions() (map[string][]entities.DropdownOption, error) {
	all, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]entities.DropdownOption, len(entities.DropdownFields))
	for _, f := range entities.DropdownFields {
		grouped[f] = nil
	}
	for _, o := range all {
		grouped[o.Field] = append(grouped[o.Field], o)
	}
	return grouped, nil
}

func (s *optionSvc) GroupedValues() (map[string][]string, error) {
	grouped, err := s.GroupedOptions()
	if err != nil {
		return nil, err
	}
	values := make(map[string][]string, len(grouped))
	for f, opts := range grouped {
		vals := make([]string, 0, len(opts))
		for _, o := range opts {
			vals = append(vals, o.Value)
		}
		values[f] = vals
	}
	return values, nil
}

func (s *optionSvc) DeleteOption(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete option %d: %w", id, err)
	}
	log.Info().Uint("id", id).Msg("dropdown option deleted")
	return nil
}
