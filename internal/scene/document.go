package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a scene document. The codec is chosen by extension: .json, or
// .yaml/.yml.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported scene format %q", ext)
	}
}

// Save writes sc to path, replacing any existing file. The document is
// written to a temporary file in the same directory first and then renamed
// into place.
func Save(sc *Scene, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = MarshalJSON(sc)
	case ".yaml", ".yml":
		data, err = MarshalYAML(sc)
	default:
		return fmt.Errorf("unsupported scene format %q", ext)
	}
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".texnorm-*")
	if err != nil {
		return fmt.Errorf("save scene %q: %w", path, err)
	}
	tmpPath := tmp.Name()

	// CreateTemp uses 0600; keep the mode of the file being replaced.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("save scene %q: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("save scene %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save scene %q: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save scene %q: %w", path, err)
	}
	return nil
}

// ParseJSON converts a JSON scene document into a Scene.
func ParseJSON(data []byte) (*Scene, error) {
	var raw sceneDoc
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse scene JSON: %w", err)
	}
	return buildScene(&raw)
}

// ParseYAML converts a YAML scene document into a Scene.
func ParseYAML(data []byte) (*Scene, error) {
	var raw sceneDoc
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse scene YAML: %w", err)
	}
	return buildScene(&raw)
}

// MarshalJSON encodes sc as an indented JSON document.
func MarshalJSON(sc *Scene) ([]byte, error) {
	data, err := json.MarshalIndent(toDoc(sc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode scene JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// MarshalYAML encodes sc as a YAML document.
func MarshalYAML(sc *Scene) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toDoc(sc)); err != nil {
		return nil, fmt.Errorf("encode scene YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode scene YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// --- Document wire types ---

type sceneDoc struct {
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Images    []imageDoc    `json:"images" yaml:"images"`
	Materials []materialDoc `json:"materials" yaml:"materials"`
	Objects   []objectDoc   `json:"objects" yaml:"objects"`
}

type imageDoc struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	FilePath string `json:"filepath" yaml:"filepath"`
}

type materialDoc struct {
	Name  string    `json:"name" yaml:"name"`
	Nodes []nodeDoc `json:"nodes" yaml:"nodes"`
}

type nodeDoc struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

type objectDoc struct {
	Name          string    `json:"name" yaml:"name"`
	Data          string    `json:"data,omitempty" yaml:"data,omitempty"`
	MaterialSlots []slotDoc `json:"material_slots,omitempty" yaml:"material_slots,omitempty"`
}

type slotDoc struct {
	Material string `json:"material,omitempty" yaml:"material,omitempty"`
}

// --- Conversion between wire and domain types ---

func buildScene(raw *sceneDoc) (*Scene, error) {
	sc := &Scene{Name: raw.Name}

	images := make(map[string]*Image, len(raw.Images))
	for _, d := range raw.Images {
		img := &Image{ID: d.ID, Name: d.Name, FilePath: d.FilePath}
		if img.ID == "" {
			img.ID = img.Name
		}
		if img.ID == "" {
			return nil, fmt.Errorf("image with filepath %q has neither id nor name", d.FilePath)
		}
		if _, dup := images[img.ID]; dup {
			return nil, fmt.Errorf("duplicate image id %q", img.ID)
		}
		images[img.ID] = img
		sc.Images = append(sc.Images, img)
	}

	materials := make(map[string]*Material, len(raw.Materials))
	for _, d := range raw.Materials {
		if _, dup := materials[d.Name]; dup {
			return nil, fmt.Errorf("duplicate material %q", d.Name)
		}
		mat := &Material{Name: d.Name}
		for _, n := range d.Nodes {
			mat.Nodes = append(mat.Nodes, &Node{
				Name:     n.Name,
				Kind:     NodeKind(n.Type),
				Image:    images[n.Image],
				ImageRef: n.Image,
			})
		}
		materials[d.Name] = mat
		sc.Materials = append(sc.Materials, mat)
	}

	for _, d := range raw.Objects {
		obj := &Object{Name: d.Name, Data: d.Data}
		for i, s := range d.MaterialSlots {
			slot := &MaterialSlot{}
			if s.Material != "" {
				mat, ok := materials[s.Material]
				if !ok {
					return nil, fmt.Errorf("object %q slot %d: unknown material %q", d.Name, i, s.Material)
				}
				slot.Material = mat
			}
			obj.MaterialSlots = append(obj.MaterialSlots, slot)
		}
		sc.Objects = append(sc.Objects, obj)
	}
	return sc, nil
}

func toDoc(sc *Scene) *sceneDoc {
	doc := &sceneDoc{
		Name:      sc.Name,
		Images:    []imageDoc{},
		Materials: []materialDoc{},
		Objects:   []objectDoc{},
	}
	for _, img := range sc.Images {
		doc.Images = append(doc.Images, imageDoc{ID: img.ID, Name: img.Name, FilePath: img.FilePath})
	}
	for _, mat := range sc.Materials {
		md := materialDoc{Name: mat.Name, Nodes: []nodeDoc{}}
		for _, n := range mat.Nodes {
			ref := n.ImageRef
			if n.Image != nil {
				ref = n.Image.ID
			}
			md.Nodes = append(md.Nodes, nodeDoc{Name: n.Name, Type: string(n.Kind), Image: ref})
		}
		doc.Materials = append(doc.Materials, md)
	}
	for _, obj := range sc.Objects {
		od := objectDoc{Name: obj.Name, Data: obj.Data}
		for _, slot := range obj.MaterialSlots {
			var sd slotDoc
			if slot != nil && slot.Material != nil {
				sd.Material = slot.Material.Name
			}
			od.MaterialSlots = append(od.MaterialSlots, sd)
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc
}
