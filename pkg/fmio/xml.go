package fmio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Roldans/FaMA/pkg/featuremodel"
)

type xmlModel struct {
	XMLName     xml.Name        `xml:"featuremodel"`
	ID          string          `xml:"id,attr"`
	Root        xmlFeature      `xml:"feature"`
	Constraints *xmlConstraints `xml:"constraints"`
}

type xmlFeature struct {
	Name      string        `xml:"name,attr"`
	Relations []xmlRelation `xml:",any"`
}

type xmlRelation struct {
	XMLName  xml.Name
	Children []xmlFeature `xml:"feature"`
}

type xmlConstraints struct {
	Items []xmlConstraint `xml:",any"`
}

type xmlConstraint struct {
	XMLName xml.Name
	From    string `xml:"from,attr"`
	To      string `xml:"to,attr"`
}

// WriteModel renders m as an indented XML document.
func WriteModel(w io.Writer, m *featuremodel.FeatureModel) error {
	byParent := make(map[uuid.UUID][]featuremodel.Relation)
	for _, rel := range m.Relations() {
		byParent[rel.Parent.ID] = append(byParent[rel.Parent.ID], rel)
	}

	doc := xmlModel{
		ID:   m.ID().String(),
		Root: featureElement(m.Root(), byParent),
	}
	if constraints := m.Constraints(); len(constraints) > 0 {
		items := make([]xmlConstraint, 0, len(constraints))
		for _, c := range constraints {
			name := "requires"
			if c.Kind == featuremodel.ConstraintExcludes {
				name = "excludes"
			}
			items = append(items, xmlConstraint{
				XMLName: xml.Name{Local: name},
				From:    c.From.Name,
				To:      c.To.Name,
			})
		}
		doc.Constraints = &xmlConstraints{Items: items}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func featureElement(f featuremodel.Feature, byParent map[uuid.UUID][]featuremodel.Relation) xmlFeature {
	el := xmlFeature{Name: f.Name}
	for _, rel := range byParent[f.ID] {
		var name string
		switch rel.Kind {
		case featuremodel.RelationMandatory:
			name = "mandatory"
		case featuremodel.RelationOptional:
			name = "optional"
		case featuremodel.RelationAlternative:
			name = "alternative"
		case featuremodel.RelationOr:
			name = "or"
		}
		children := make([]xmlFeature, 0, len(rel.Children))
		for _, c := range rel.Children {
			children = append(children, featureElement(c, byParent))
		}
		el.Relations = append(el.Relations, xmlRelation{
			XMLName:  xml.Name{Local: name},
			Children: children,
		})
	}
	return el
}

// ReadModel reconstructs a feature model from an XML document produced by
// WriteModel. The rebuilt model carries a fresh identity.
func ReadModel(r io.Reader) (*featuremodel.FeatureModel, error) {
	var doc xmlModel
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	m, err := featuremodel.New(doc.Root.Name)
	if err != nil {
		return nil, err
	}
	if err := addChildren(m, m.Root(), doc.Root.Relations); err != nil {
		return nil, err
	}
	if doc.Constraints != nil {
		if err := addConstraints(m, doc.Constraints.Items); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func addChildren(m *featuremodel.FeatureModel, parent featuremodel.Feature, rels []xmlRelation) error {
	for _, rel := range rels {
		switch rel.XMLName.Local {
		case "mandatory", "optional":
			for _, child := range rel.Children {
				var f featuremodel.Feature
				var err error
				if rel.XMLName.Local == "mandatory" {
					f, err = m.AddMandatory(parent, child.Name)
				} else {
					f, err = m.AddOptional(parent, child.Name)
				}
				if err != nil {
					return err
				}
				if err := addChildren(m, f, child.Relations); err != nil {
					return err
				}
			}
		case "alternative", "or":
			names := make([]string, len(rel.Children))
			for i, c := range rel.Children {
				names[i] = c.Name
			}
			var children []featuremodel.Feature
			var err error
			if rel.XMLName.Local == "alternative" {
				children, err = m.AddAlternativeGroup(parent, names)
			} else {
				children, err = m.AddOrGroup(parent, names)
			}
			if err != nil {
				return err
			}
			for i, c := range rel.Children {
				if err := addChildren(m, children[i], c.Relations); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: <%s>", ErrUnknownElement, rel.XMLName.Local)
		}
	}
	return nil
}

func addConstraints(m *featuremodel.FeatureModel, items []xmlConstraint) error {
	for _, c := range items {
		from, ok := m.FeatureByName(c.From)
		if !ok {
			return fmt.Errorf("%w: constraint endpoint %q", featuremodel.ErrUnknownFeature, c.From)
		}
		to, ok := m.FeatureByName(c.To)
		if !ok {
			return fmt.Errorf("%w: constraint endpoint %q", featuremodel.ErrUnknownFeature, c.To)
		}

		var err error
		switch c.XMLName.Local {
		case "excludes":
			err = m.AddExcludes(from, to)
		case "requires":
			err = m.AddRequires(from, to)
		default:
			err = fmt.Errorf("%w: <%s>", ErrUnknownElement, c.XMLName.Local)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
