package scene

import "github.com/Faultbox/cubewalk/pkg/math"

// DrawItem is one object to draw this frame.
type DrawItem struct {
	Model    math.Mat4
	Geometry Geometry
	Material Material
	IsLight  bool
}

// RenderCommand is everything the renderer needs for one frame.
type RenderCommand struct {
	View         math.Mat4
	Projection   math.Mat4
	LightPosView math.Vec3
	Items        []DrawItem
}

// Uniforms returns the values to upload for item.
func (c *RenderCommand) Uniforms(item DrawItem) Uniforms {
	return Uniforms{
		Model:        item.Model,
		View:         c.View,
		Projection:   c.Projection,
		LightPosView: c.LightPosView,
		IsLight:      item.IsLight,
	}
}

// AppendDrawItems appends one item per object, in draw order, to items.
func (s *Scene) AppendDrawItems(items []DrawItem) []DrawItem {
	for _, obj := range s.objects {
		items = append(items, DrawItem{
			Model:    obj.Transform.ModelMatrix(),
			Geometry: obj.Geometry,
			Material: obj.Material,
			IsLight:  obj.IsLight,
		})
	}
	return items
}
