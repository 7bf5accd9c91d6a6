// Package scene models the host application's scene graph as far as texture
// normalization needs it: objects, material slots, materials, node graphs and
// the images that image-texture nodes point at.
//
// Scenes are read from and written back to a scene document (JSON or YAML).
// Images and materials are data-blocks owned by the scene; nodes and slots
// link to them, so several nodes can share one *Image and a rename through
// any of them is visible through all of them.
//
// Functions:
//   - Load(path) / Save(sc, path): codec picked by file extension.
//   - ParseJSON / ParseYAML / MarshalJSON / MarshalYAML: codec entry points.
//   - (*Scene).Textures() → []TextureRef: objects with data → slots with a
//     material → TEX_IMAGE nodes, in document order.
package scene
