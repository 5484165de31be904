package actions

import (
	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/encoding"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// Specification is the YAML representation of a single action.
type Specification struct {
	// Type is the action kind.
	Type string `yaml:"type"`
	// URL is the target location for create, delete, and chmod actions.
	URL string `yaml:"url"`
	// Source is the source location for move and copy actions.
	Source string `yaml:"src"`
	// Destination is the destination location for move and copy actions.
	Destination string `yaml:"dest"`
	// EntryType is the entry type.
	EntryType cache.EntryType `yaml:"entryType"`
	// Target is the link target for link creation.
	Target string `yaml:"target"`
	// Value is the permission value for chmod actions.
	Value *filesystem.Mode `yaml:"value"`
}

// File is the YAML representation of an action file.
type File struct {
	// Actions are the action specifications, in order.
	Actions []Specification `yaml:"actions"`
}

// convert converts a Specification to an action.
func (s *Specification) convert() (Action, error) {
	// Parse locations relevant to the action kind.
	parse := func(raw, name string) (location.Location, error) {
		if raw == "" {
			return location.Location{}, errors.Errorf("missing %s", name)
		}
		result, err := location.Parse(raw)
		if err != nil {
			return location.Location{}, errors.Wrapf(err, "invalid %s", name)
		}
		return result, nil
	}

	// Handle the conversion based on type.
	switch s.Type {
	case "create":
		target, err := parse(s.URL, "url")
		if err != nil {
			return nil, err
		} else if s.EntryType == cache.EntryTypeLink && s.Target == "" {
			return nil, errors.New("link creation requires a target")
		} else if s.EntryType != cache.EntryTypeLink && s.Target != "" {
			return nil, errors.New("target specified for non-link entry")
		}
		return Create{Location: target, EntryType: s.EntryType, LinkTarget: s.Target}, nil
	case "delete":
		target, err := parse(s.URL, "url")
		if err != nil {
			return nil, err
		}
		return Delete{Location: target, EntryType: s.EntryType}, nil
	case "move", "copy":
		source, err := parse(s.Source, "src")
		if err != nil {
			return nil, err
		}
		destination, err := parse(s.Destination, "dest")
		if err != nil {
			return nil, err
		}
		if s.Type == "move" {
			return Move{Source: source, Destination: destination, EntryType: s.EntryType}, nil
		}
		return Copy{Source: source, Destination: destination, EntryType: s.EntryType}, nil
	case "chmod":
		target, err := parse(s.URL, "url")
		if err != nil {
			return nil, err
		} else if s.Value == nil {
			return nil, errors.New("missing value")
		}
		return Chmod{Location: target, Value: *s.Value, EntryType: s.EntryType}, nil
	case "":
		return nil, errors.New("missing action type")
	default:
		return nil, errors.Errorf("unknown action type: %s", s.Type)
	}
}

// Decode converts the file's specifications to actions.
func (f *File) Decode() ([]Action, error) {
	result := make([]Action, 0, len(f.Actions))
	for i := range f.Actions {
		action, err := f.Actions[i].convert()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid action at index %d", i)
		}
		result = append(result, action)
	}
	return result, nil
}

// Decode decodes YAML-encoded action file data.
func Decode(data []byte) ([]Action, error) {
	file := &File{}
	if err := encoding.UnmarshalYAMLStrict(data, file); err != nil {
		return nil, errors.Wrap(err, "unable to decode actions")
	}
	return file.Decode()
}

// Load loads a YAML action file from the specified path.
func Load(path string) ([]Action, error) {
	file := &File{}
	if err := encoding.LoadAndUnmarshalYAML(path, file); err != nil {
		return nil, errors.Wrap(err, "unable to load action file")
	}
	return file.Decode()
}
