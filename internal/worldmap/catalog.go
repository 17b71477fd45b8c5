package worldmap

// Catalog lists the named world-map tiles and where each sits in the
// 640x356 composited texture frame. Positions are laid out on the regular
// 32px grid of the primary and secondary atlases and have not been checked
// against a retail wm_us TXZ; correct individual entries as they are.
var Catalog = []Tile{
	{ID: 0, Name: "pond", Width: 32, Height: 32, U: 0, V: 0},
	{ID: 1, Name: "riv_m2", Width: 32, Height: 32, U: 32, V: 0},
	{ID: 2, Name: "was_gs", Width: 32, Height: 32, U: 64, V: 0},
	{ID: 3, Name: "wasfor", Width: 32, Height: 32, U: 96, V: 0},
	{ID: 4, Name: "wass_s", Width: 32, Height: 32, U: 128, V: 0},
	{ID: 5, Name: "wasfl", Width: 32, Height: 32, U: 160, V: 0},
	{ID: 6, Name: "wasbr", Width: 32, Height: 32, U: 192, V: 0},
	{ID: 7, Name: "glass", Width: 32, Height: 32, U: 224, V: 0},
	{ID: 8, Name: "gclif", Width: 32, Height: 32, U: 256, V: 0},
	{ID: 9, Name: "gclifu", Width: 32, Height: 32, U: 288, V: 0},
	{ID: 10, Name: "ground", Width: 32, Height: 32, U: 320, V: 0},
	{ID: 11, Name: "gr_s1", Width: 32, Height: 32, U: 352, V: 0},
	{ID: 12, Name: "gr_s2", Width: 32, Height: 32, U: 384, V: 0},
	{ID: 13, Name: "forest", Width: 32, Height: 32, U: 416, V: 0},
	{ID: 14, Name: "fr_s1", Width: 32, Height: 32, U: 448, V: 0},
	{ID: 15, Name: "fr_s2", Width: 32, Height: 32, U: 480, V: 0},
	{ID: 16, Name: "tree", Width: 32, Height: 32, U: 512, V: 0},
	{ID: 17, Name: "treeb", Width: 32, Height: 32, U: 544, V: 0},
	{ID: 18, Name: "desert", Width: 32, Height: 32, U: 576, V: 0},
	{ID: 19, Name: "ds_s1", Width: 32, Height: 32, U: 608, V: 0},
	{ID: 20, Name: "ds_s2", Width: 32, Height: 32, U: 0, V: 32},
	{ID: 21, Name: "sand", Width: 32, Height: 32, U: 32, V: 32},
	{ID: 22, Name: "beach", Width: 32, Height: 32, U: 64, V: 32},
	{ID: 23, Name: "bc_s1", Width: 32, Height: 32, U: 96, V: 32},
	{ID: 24, Name: "rock", Width: 32, Height: 32, U: 128, V: 32},
	{ID: 25, Name: "rk_s1", Width: 32, Height: 32, U: 160, V: 32},
	{ID: 26, Name: "rk_s2", Width: 32, Height: 32, U: 192, V: 32},
	{ID: 27, Name: "snow", Width: 32, Height: 32, U: 224, V: 32},
	{ID: 28, Name: "sn_s1", Width: 32, Height: 32, U: 256, V: 32},
	{ID: 29, Name: "sn_s2", Width: 32, Height: 32, U: 288, V: 32},
	{ID: 30, Name: "ice", Width: 32, Height: 32, U: 320, V: 32},
	{ID: 31, Name: "icec", Width: 32, Height: 32, U: 352, V: 32},
	{ID: 32, Name: "bridge", Width: 32, Height: 32, U: 384, V: 32},
	{ID: 33, Name: "bridg2", Width: 32, Height: 32, U: 416, V: 32},
	{ID: 34, Name: "road", Width: 32, Height: 32, U: 448, V: 32},
	{ID: 35, Name: "rd_s1", Width: 32, Height: 32, U: 480, V: 32},
	{ID: 36, Name: "rail", Width: 32, Height: 32, U: 512, V: 32},
	{ID: 37, Name: "rl_s1", Width: 32, Height: 32, U: 544, V: 32},
	{ID: 38, Name: "swamp", Width: 32, Height: 32, U: 576, V: 32},
	{ID: 39, Name: "sw_s1", Width: 32, Height: 32, U: 608, V: 32},
	{ID: 40, Name: "clif", Width: 32, Height: 32, U: 0, V: 64},
	{ID: 41, Name: "clifs", Width: 32, Height: 32, U: 32, V: 64},
	{ID: 42, Name: "mount", Width: 32, Height: 32, U: 64, V: 64},
	{ID: 43, Name: "mt_s1", Width: 32, Height: 32, U: 96, V: 64},
	{ID: 44, Name: "mt_s2", Width: 32, Height: 32, U: 128, V: 64},
	{ID: 45, Name: "mtsnow", Width: 32, Height: 32, U: 160, V: 64},
	{ID: 46, Name: "crater", Width: 32, Height: 32, U: 192, V: 64},
	{ID: 47, Name: "cr_s1", Width: 32, Height: 32, U: 224, V: 64},
	{ID: 48, Name: "lava", Width: 32, Height: 32, U: 256, V: 64},
	{ID: 49, Name: "lv_s1", Width: 32, Height: 32, U: 288, V: 64},
	{ID: 50, Name: "cave", Width: 32, Height: 32, U: 320, V: 64},
	{ID: 51, Name: "town1", Width: 32, Height: 32, U: 352, V: 64},
	{ID: 52, Name: "town2", Width: 32, Height: 32, U: 384, V: 64},
	{ID: 53, Name: "junon", Width: 32, Height: 32, U: 416, V: 64},
	{ID: 54, Name: "mdrill", Width: 32, Height: 32, U: 448, V: 64},
	{ID: 55, Name: "kalm", Width: 32, Height: 32, U: 480, V: 64},
	{ID: 56, Name: "farm", Width: 32, Height: 32, U: 512, V: 64},
	{ID: 57, Name: "fence", Width: 32, Height: 32, U: 544, V: 64},
	{ID: 58, Name: "fort", Width: 32, Height: 32, U: 576, V: 64},
	{ID: 59, Name: "tower", Width: 32, Height: 32, U: 608, V: 64},
	{ID: 60, Name: "sea", Width: 64, Height: 64, U: 0, V: 96},
	{ID: 61, Name: "sea2", Width: 64, Height: 64, U: 64, V: 96},
	{ID: 62, Name: "seab", Width: 64, Height: 64, U: 128, V: 96},
	{ID: 63, Name: "shore", Width: 64, Height: 64, U: 192, V: 96},
	{ID: 64, Name: "deep", Width: 64, Height: 64, U: 256, V: 96},
	{ID: 65, Name: "cloud", Width: 64, Height: 64, U: 320, V: 96},
	{ID: 66, Name: "clouds", Width: 64, Height: 64, U: 384, V: 96},
	{ID: 67, Name: "sky", Width: 64, Height: 64, U: 448, V: 96},
	{ID: 68, Name: "flower", Width: 16, Height: 16, U: 512, V: 96},
	{ID: 69, Name: "bush", Width: 16, Height: 16, U: 528, V: 96},
	{ID: 70, Name: "stone", Width: 16, Height: 16, U: 544, V: 96},
	{ID: 71, Name: "sign", Width: 16, Height: 16, U: 560, V: 96},
	{ID: 72, Name: "wreck", Width: 16, Height: 16, U: 576, V: 96},
	{ID: 73, Name: "dune", Width: 16, Height: 16, U: 592, V: 96},
	{ID: 74, Name: "hole", Width: 16, Height: 16, U: 608, V: 96},
	{ID: 75, Name: "steam", Width: 16, Height: 16, U: 624, V: 96},
	{ID: 76, Name: "midgar", Width: 64, Height: 50, U: 0, V: 256},
	{ID: 77, Name: "mdgr_s", Width: 64, Height: 50, U: 64, V: 256},
	{ID: 78, Name: "mdgr_w", Width: 64, Height: 50, U: 128, V: 256},
	{ID: 79, Name: "mdgr_e", Width: 64, Height: 50, U: 192, V: 256},
	{ID: 80, Name: "rocket", Width: 64, Height: 50, U: 256, V: 256},
	{ID: 81, Name: "cosmo", Width: 64, Height: 50, U: 320, V: 256},
	{ID: 82, Name: "gold", Width: 64, Height: 50, U: 384, V: 256},
	{ID: 83, Name: "gldsau", Width: 64, Height: 50, U: 448, V: 256},
	{ID: 84, Name: "condor", Width: 64, Height: 50, U: 512, V: 256},
	{ID: 85, Name: "wutai", Width: 64, Height: 50, U: 576, V: 256},
	{ID: 86, Name: "bone", Width: 64, Height: 50, U: 0, V: 306},
	{ID: 87, Name: "north", Width: 64, Height: 50, U: 64, V: 306},
	{ID: 88, Name: "mdgr_n", Width: 64, Height: 50, U: 128, V: 306},
	{ID: 89, Name: "chocob", Width: 64, Height: 50, U: 192, V: 306},
	{ID: 90, Name: "ufo", Width: 64, Height: 50, U: 256, V: 306},
	{ID: 91, Name: "ship", Width: 64, Height: 50, U: 320, V: 306},
	{ID: 92, Name: "highw", Width: 64, Height: 50, U: 384, V: 306},
	{ID: 93, Name: "tiny", Width: 64, Height: 50, U: 448, V: 306},
	{ID: 94, Name: "subm", Width: 64, Height: 50, U: 512, V: 306},
	{ID: 95, Name: "buggy", Width: 64, Height: 50, U: 576, V: 306},
}
