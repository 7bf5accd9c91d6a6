package scene

// NodeKind is the host's node type identifier.
type NodeKind string

// NodeImageTexture is the only kind traversal cares about. Other kinds are
// carried through load and save as written.
const NodeImageTexture NodeKind = "TEX_IMAGE"

// Scene is the root of a scene document.
type Scene struct {
	Name      string
	Images    []*Image
	Materials []*Material
	Objects   []*Object
}

// Object is a scene object. Objects without data (empties, cameras without a
// data-block in the export) carry no materials and are skipped by traversal.
type Object struct {
	Name          string
	Data          string
	MaterialSlots []*MaterialSlot
}

// MaterialSlot optionally holds a material.
type MaterialSlot struct {
	Material *Material
}

// Material owns an ordered node graph.
type Material struct {
	Name  string
	Nodes []*Node
}

// Node is one shader node. Image is nil when the node has no image or links
// to an image id the scene does not define; ImageRef keeps the link as
// written so it survives a save.
type Node struct {
	Name     string
	Kind     NodeKind
	Image    *Image
	ImageRef string
}

// Image is an image data-block. Name and FilePath are mutable; ID is the
// document identity and never changes.
type Image struct {
	ID       string
	Name     string
	FilePath string
}

// TextureRef locates one image-texture node in the scene.
type TextureRef struct {
	Object   *Object
	Slot     int
	Material *Material
	Node     *Node
}

// Image returns the node's image, or nil.
func (r TextureRef) Image() *Image { return r.Node.Image }

// Label identifies the reference in log lines: object/material/node.
func (r TextureRef) Label() string {
	return r.Object.Name + "/" + r.Material.Name + "/" + r.Node.Name
}

// Textures walks Scene → Object → MaterialSlot → Material → Node and returns
// every image-texture node in document order. Objects without data and empty
// slots are skipped. A material used by several slots is visited once per
// slot.
func (s *Scene) Textures() []TextureRef {
	var refs []TextureRef
	for _, obj := range s.Objects {
		if obj.Data == "" {
			continue
		}
		for i, slot := range obj.MaterialSlots {
			if slot == nil || slot.Material == nil {
				continue
			}
			for _, node := range slot.Material.Nodes {
				if node.Kind != NodeImageTexture {
					continue
				}
				refs = append(refs, TextureRef{
					Object:   obj,
					Slot:     i,
					Material: slot.Material,
					Node:     node,
				})
			}
		}
	}
	return refs
}
