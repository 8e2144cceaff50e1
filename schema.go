package scenecsv

import (
	"fmt"
)

var baseColumns = []string{
	"image_relpath", "image_exists", "shape_name", "material_folder", "light_folder", "batch_folder",
	"frame", "config_id", "camera_png",
	"render_engine", "view_transform", "look",
	"camera_name",
	"cam_pos_x", "cam_pos_y", "cam_pos_z",
	"cam_forward_x", "cam_forward_y", "cam_forward_z",
	"cam_up_x", "cam_up_y", "cam_up_z",
	"cam_right_x", "cam_right_y", "cam_right_z",
	"focal_length_mm",
	"num_active_lights",
}

// lightSlotColumns are replicated once per light rank, prefixed lightN_.
var lightSlotColumns = []string{
	"name", "type", "energy",
	"color_r", "color_g", "color_b",
	"pos_x", "pos_y", "pos_z",
	"dir_x", "dir_y", "dir_z",
	"dir_cam_x", "dir_cam_y", "dir_cam_z",
	"spot_cone_deg", "spot_blend",
	"area_shape", "area_size_x", "area_size_y",
}

// LightSlotWidth is the number of columns per light rank.
var LightSlotWidth = len(lightSlotColumns)

func lightPrefix(i int) string {
	return fmt.Sprintf("light%d_", i)
}

// Header returns the ordered column list for a given light capacity.
func Header(maxLights int) []string {
	header := make([]string, 0, len(baseColumns)+maxLights*len(lightSlotColumns))
	header = append(header, baseColumns...)
	for i := 0; i < maxLights; i++ {
		p := lightPrefix(i)
		for _, c := range lightSlotColumns {
			header = append(header, p+c)
		}
	}
	return header
}
