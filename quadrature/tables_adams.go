package quadrature

// adamsBashforthTable holds explicit Adams-Bashforth weights for the
// integral over [0,1] from samples at 0, -1, ... , 1-n.
var adamsBashforthTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			1.0,
		},
	},
	2: {
		x: []float64{
			0.0, -1.0,
		},
		w: []float64{
			1.5, -0.5,
		},
	},
	3: {
		x: []float64{
			0.0, -1.0,
			-2.0,
		},
		w: []float64{
			1.916666666666666666667, -1.333333333333333333333,
			0.4166666666666666666667,
		},
	},
	4: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
		},
		w: []float64{
			2.291666666666666666667, -2.458333333333333333333,
			1.541666666666666666667, -0.375,
		},
	},
	5: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
			-4.0,
		},
		w: []float64{
			2.640277777777777777778, -3.852777777777777777778,
			3.633333333333333333333, -1.769444444444444444444,
			0.3486111111111111111111,
		},
	},
	6: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
			-4.0, -5.0,
		},
		w: []float64{
			2.970138888888888888889, -5.502083333333333333333,
			6.931944444444444444444, -5.068055555555555555556,
			1.997916666666666666667, -0.3298611111111111111111,
		},
	},
	7: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
			-4.0, -5.0,
			-6.0,
		},
		w: []float64{
			3.285730820105820105820, -7.395634920634920634921,
			11.66582341269841269841, -11.37989417989417989418,
			6.731795634920634920635, -2.223412698412698412698,
			0.3155919312169312169312,
		},
	},
	8: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
			-4.0, -5.0,
			-6.0, -7.0,
		},
		w: []float64{
			3.589955357142857142857, -9.525206679894179894180,
			18.05453869047619047619, -22.02775297619047619048,
			17.37965443121693121693, -8.612127976190476190476,
			2.445163690476190476190, -0.3042245370370370370370,
		},
	},
	9: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
			-4.0, -5.0,
			-6.0, -7.0,
			-8.0,
		},
		w: []float64{
			3.884823357583774250441, -11.88415068342151675485,
			26.31084270282186948854, -38.54036100088183421517,
			38.02041446208112874780, -25.12473600088183421517,
			10.70146770282186948854, -2.663168540564373897707,
			0.2948680004409171075838,
		},
	},
	10: {
		x: []float64{
			0.0, -1.0,
			-2.0, -3.0,
			-4.0, -5.0,
			-6.0, -7.0,
			-8.0, -9.0,
		},
		w: []float64{
			4.171798804012345679012, -14.46692970127865961199,
			36.64195877425044091711, -62.64629850088183421517,
			74.17932071208112874780, -61.28364225088183421517,
			34.80740520282186948854, -12.99428461199294532628,
			2.877647018298059964727, -0.2869754464285714285714,
		},
	},
}

// adamsMoultonTable holds implicit Adams-Moulton weights for the
// integral over [0,1] from samples at 1, 0, ... , 2-n.
var adamsMoultonTable = map[int]tabulated{
	1: {
		x: []float64{
			1.0,
		},
		w: []float64{
			1.0,
		},
	},
	2: {
		x: []float64{
			1.0, 0.0,
		},
		w: []float64{
			0.5, 0.5,
		},
	},
	3: {
		x: []float64{
			1.0, 0.0,
			-1.0,
		},
		w: []float64{
			0.4166666666666666666667, 0.6666666666666666666667,
			-0.08333333333333333333333,
		},
	},
	4: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
		},
		w: []float64{
			0.375, 0.7916666666666666666667,
			-0.2083333333333333333333, 0.04166666666666666666667,
		},
	},
	5: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
			-3.0,
		},
		w: []float64{
			0.3486111111111111111111, 0.8972222222222222222222,
			-0.3666666666666666666667, 0.1472222222222222222222,
			-0.02638888888888888888889,
		},
	},
	6: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
			-3.0, -4.0,
		},
		w: []float64{
			0.3298611111111111111111, 0.9909722222222222222222,
			-0.5541666666666666666667, 0.3347222222222222222222,
			-0.1201388888888888888889, 0.01875,
		},
	},
	7: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
			-3.0, -4.0,
			-5.0,
		},
		w: []float64{
			0.3155919312169312169312, 1.076587301587301587302,
			-0.7682043650793650793651, 0.6201058201058201058201,
			-0.3341765873015873015873, 0.1043650793650793650794,
			-0.01426917989417989417989,
		},
	},
	8: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
			-3.0, -4.0,
			-5.0, -6.0,
		},
		w: []float64{
			0.3042245370370370370370, 1.156159060846560846561,
			-1.006919642857142857143, 1.017964616402116402116,
			-0.7320353835978835978836, 0.3430803571428571428571,
			-0.09384093915343915343915, 0.01136739417989417989418,
		},
	},
	9: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
			-3.0, -4.0,
			-5.0, -6.0,
			-7.0,
		},
		w: []float64{
			0.2948680004409171075838, 1.231011353615520282187,
			-1.268902667548500881834, 1.541930665784832451499,
			-1.386992945326278659612, 0.8670464065255731922399,
			-0.3558239638447971781305, 0.08621968694885361552028,
			-0.009356536596119929453263,
		},
	},
	10: {
		x: []float64{
			1.0, 0.0,
			-1.0, -2.0,
			-3.0, -4.0,
			-5.0, -6.0,
			-7.0, -8.0,
		},
		w: []float64{
			0.2869754464285714285714, 1.302044339726631393298,
			-1.553034611992945326279, 2.204905202821869488536,
			-2.381454750881834215168, 1.861508212081128747795,
			-1.018798500881834215168, 0.3703516313932980599647,
			-0.08038952270723104056437, 0.007892554012345679012346,
		},
	},
}
