package quadrature

// chebyshev1Table holds Gauss-Chebyshev rules for weight 1/sqrt(1-x^2).
var chebyshev1Table = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			3.141592653589793238463,
		},
	},
	2: {
		x: []float64{
			-0.7071067811865475244008, 0.7071067811865475244008,
		},
		w: []float64{
			1.570796326794896619231, 1.570796326794896619231,
		},
	},
	3: {
		x: []float64{
			-0.8660254037844386467637, 0.0,
			0.8660254037844386467637,
		},
		w: []float64{
			1.047197551196597746154, 1.047197551196597746154,
			1.047197551196597746154,
		},
	},
	4: {
		x: []float64{
			-0.9238795325112867561282, -0.3826834323650897717285,
			0.3826834323650897717285, 0.9238795325112867561282,
		},
		w: []float64{
			0.7853981633974483096157, 0.7853981633974483096157,
			0.7853981633974483096157, 0.7853981633974483096157,
		},
	},
	5: {
		x: []float64{
			-0.9510565162951535721164, -0.5877852522924731291687,
			0.0, 0.5877852522924731291687,
			0.9510565162951535721164,
		},
		w: []float64{
			0.6283185307179586476925, 0.6283185307179586476925,
			0.6283185307179586476925, 0.6283185307179586476925,
			0.6283185307179586476925,
		},
	},
	6: {
		x: []float64{
			-0.9659258262890682867497, -0.7071067811865475244008,
			-0.2588190451025207623489, 0.2588190451025207623489,
			0.7071067811865475244008, 0.9659258262890682867497,
		},
		w: []float64{
			0.5235987755982988730771, 0.5235987755982988730771,
			0.5235987755982988730771, 0.5235987755982988730771,
			0.5235987755982988730771, 0.5235987755982988730771,
		},
	},
	7: {
		x: []float64{
			-0.9749279121818236070181, -0.7818314824680298087084,
			-0.4338837391175581204758, 0.0,
			0.4338837391175581204758, 0.7818314824680298087084,
			0.9749279121818236070181,
		},
		w: []float64{
			0.4487989505128276054947, 0.4487989505128276054947,
			0.4487989505128276054947, 0.4487989505128276054947,
			0.4487989505128276054947, 0.4487989505128276054947,
			0.4487989505128276054947,
		},
	},
	8: {
		x: []float64{
			-0.9807852804032304491262, -0.8314696123025452370788,
			-0.5555702330196022247428, -0.1950903220161282678483,
			0.1950903220161282678483, 0.5555702330196022247428,
			0.8314696123025452370788, 0.9807852804032304491262,
		},
		w: []float64{
			0.3926990816987241548078, 0.3926990816987241548078,
			0.3926990816987241548078, 0.3926990816987241548078,
			0.3926990816987241548078, 0.3926990816987241548078,
			0.3926990816987241548078, 0.3926990816987241548078,
		},
	},
	9: {
		x: []float64{
			-0.9848077530122080593667, -0.8660254037844386467637,
			-0.6427876096865393263226, -0.3420201433256687330441,
			0.0, 0.3420201433256687330441,
			0.6427876096865393263226, 0.8660254037844386467637,
			0.9848077530122080593667,
		},
		w: []float64{
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847,
		},
	},
	10: {
		x: []float64{
			-0.9876883405951377261900, -0.8910065241883678623597,
			-0.7071067811865475244008, -0.4539904997395467915604,
			-0.1564344650402308690101, 0.1564344650402308690101,
			0.4539904997395467915604, 0.7071067811865475244008,
			0.8910065241883678623597, 0.9876883405951377261900,
		},
		w: []float64{
			0.3141592653589793238463, 0.3141592653589793238463,
			0.3141592653589793238463, 0.3141592653589793238463,
			0.3141592653589793238463, 0.3141592653589793238463,
			0.3141592653589793238463, 0.3141592653589793238463,
			0.3141592653589793238463, 0.3141592653589793238463,
		},
	},
}

// chebyshev2Table holds Gauss-Chebyshev rules for weight sqrt(1-x^2).
var chebyshev2Table = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			1.570796326794896619231,
		},
	},
	2: {
		x: []float64{
			-0.5000000000000000000000, 0.5000000000000000000000,
		},
		w: []float64{
			0.7853981633974483096157, 0.7853981633974483096157,
		},
	},
	3: {
		x: []float64{
			-0.7071067811865475244008, 0.0,
			0.7071067811865475244008,
		},
		w: []float64{
			0.3926990816987241548078, 0.7853981633974483096157,
			0.3926990816987241548078,
		},
	},
	4: {
		x: []float64{
			-0.8090169943749474241023, -0.3090169943749474241023,
			0.3090169943749474241023, 0.8090169943749474241023,
		},
		w: []float64{
			0.2170787134227059949789, 0.5683194499747423146367,
			0.5683194499747423146367, 0.2170787134227059949789,
		},
	},
	5: {
		x: []float64{
			-0.8660254037844386467637, -0.5000000000000000000000,
			0.0, 0.5000000000000000000000,
			0.8660254037844386467637,
		},
		w: []float64{
			0.1308996938995747182693, 0.3926990816987241548078,
			0.5235987755982988730771, 0.3926990816987241548078,
			0.1308996938995747182693,
		},
	},
	6: {
		x: []float64{
			-0.9009688679024191262361, -0.6234898018587335305250,
			-0.2225209339563144042889, 0.2225209339563144042889,
			0.6234898018587335305250, 0.9009688679024191262361,
		},
		w: []float64{
			0.08448869089158858326385, 0.2743330560697778668713,
			0.4265764164360818594805, 0.4265764164360818594805,
			0.2743330560697778668713, 0.08448869089158858326385,
		},
	},
	7: {
		x: []float64{
			-0.9238795325112867561282, -0.7071067811865475244008,
			-0.3826834323650897717285, 0.0,
			0.3826834323650897717285, 0.7071067811865475244008,
			0.9238795325112867561282,
		},
		w: []float64{
			0.05750944903191313218467, 0.1963495408493620774039,
			0.3351896326668110226232, 0.3926990816987241548078,
			0.3351896326668110226232, 0.1963495408493620774039,
			0.05750944903191313218467,
		},
	},
	8: {
		x: []float64{
			-0.9396926207859083840541, -0.7660444431189780352024,
			-0.5000000000000000000000, -0.1736481776669303488517,
			0.1736481776669303488517, 0.5000000000000000000000,
			0.7660444431189780352024, 0.9396926207859083840541,
		},
		w: []float64{
			0.04083294770910708918272, 0.1442256007956727584660,
			0.2617993877991494365386, 0.3385402270935190254284,
			0.3385402270935190254284, 0.2617993877991494365386,
			0.1442256007956727584660, 0.04083294770910708918272,
		},
	},
	9: {
		x: []float64{
			-0.9510565162951535721164, -0.8090169943749474241023,
			-0.5877852522924731291687, -0.3090169943749474241023,
			0.0, 0.3090169943749474241023,
			0.5877852522924731291687, 0.8090169943749474241023,
			0.9510565162951535721164,
		},
		w: []float64{
			0.02999954037160816652789, 0.1085393567113529974895,
			0.2056199086476263263568, 0.2841597249873711573184,
			0.3141592653589793238463, 0.2841597249873711573184,
			0.2056199086476263263568, 0.1085393567113529974895,
			0.02999954037160816652789,
		},
	},
	10: {
		x: []float64{
			-0.9594929736144973898904, -0.8412535328311811688618,
			-0.6548607339452850640569, -0.4154150130018864255293,
			-0.1423148382732851404438, 0.1423148382732851404438,
			0.4154150130018864255293, 0.6548607339452850640569,
			0.8412535328311811688618, 0.9594929736144973898904,
		},
		w: []float64{
			0.02266894250185884288899, 0.08347854093418901832068,
			0.1631221774548166077819, 0.2363135602034873151232,
			0.2798149423030965255009, 0.2798149423030965255009,
			0.2363135602034873151232, 0.1631221774548166077819,
			0.08347854093418901832068, 0.02266894250185884288899,
		},
	},
}

// chebyshev3Table holds Gauss-Lobatto-Chebyshev rules for weight 1/sqrt(1-x^2),
// endpoints included.
var chebyshev3Table = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			3.141592653589793238463,
		},
	},
	2: {
		x: []float64{
			-1.0, 1.0,
		},
		w: []float64{
			1.570796326794896619231, 1.570796326794896619231,
		},
	},
	3: {
		x: []float64{
			-1.0, 0.0,
			1.0,
		},
		w: []float64{
			0.7853981633974483096157, 1.570796326794896619231,
			0.7853981633974483096157,
		},
	},
	4: {
		x: []float64{
			-1.0, -0.5000000000000000000000,
			0.5000000000000000000000, 1.0,
		},
		w: []float64{
			0.5235987755982988730771, 1.047197551196597746154,
			1.047197551196597746154, 0.5235987755982988730771,
		},
	},
	5: {
		x: []float64{
			-1.0, -0.7071067811865475244008,
			0.0, 0.7071067811865475244008,
			1.0,
		},
		w: []float64{
			0.3926990816987241548078, 0.7853981633974483096157,
			0.7853981633974483096157, 0.7853981633974483096157,
			0.3926990816987241548078,
		},
	},
	6: {
		x: []float64{
			-1.0, -0.8090169943749474241023,
			-0.3090169943749474241023, 0.3090169943749474241023,
			0.8090169943749474241023, 1.0,
		},
		w: []float64{
			0.3141592653589793238463, 0.6283185307179586476925,
			0.6283185307179586476925, 0.6283185307179586476925,
			0.6283185307179586476925, 0.3141592653589793238463,
		},
	},
	7: {
		x: []float64{
			-1.0, -0.8660254037844386467637,
			-0.5000000000000000000000, 0.0,
			0.5000000000000000000000, 0.8660254037844386467637,
			1.0,
		},
		w: []float64{
			0.2617993877991494365386, 0.5235987755982988730771,
			0.5235987755982988730771, 0.5235987755982988730771,
			0.5235987755982988730771, 0.5235987755982988730771,
			0.2617993877991494365386,
		},
	},
	8: {
		x: []float64{
			-1.0, -0.9009688679024191262361,
			-0.6234898018587335305250, -0.2225209339563144042889,
			0.2225209339563144042889, 0.6234898018587335305250,
			0.9009688679024191262361, 1.0,
		},
		w: []float64{
			0.2243994752564138027473, 0.4487989505128276054947,
			0.4487989505128276054947, 0.4487989505128276054947,
			0.4487989505128276054947, 0.4487989505128276054947,
			0.4487989505128276054947, 0.2243994752564138027473,
		},
	},
	9: {
		x: []float64{
			-1.0, -0.9238795325112867561282,
			-0.7071067811865475244008, -0.3826834323650897717285,
			0.0, 0.3826834323650897717285,
			0.7071067811865475244008, 0.9238795325112867561282,
			1.0,
		},
		w: []float64{
			0.1963495408493620774039, 0.3926990816987241548078,
			0.3926990816987241548078, 0.3926990816987241548078,
			0.3926990816987241548078, 0.3926990816987241548078,
			0.3926990816987241548078, 0.3926990816987241548078,
			0.1963495408493620774039,
		},
	},
	10: {
		x: []float64{
			-1.0, -0.9396926207859083840541,
			-0.7660444431189780352024, -0.5000000000000000000000,
			-0.1736481776669303488517, 0.1736481776669303488517,
			0.5000000000000000000000, 0.7660444431189780352024,
			0.9396926207859083840541, 1.0,
		},
		w: []float64{
			0.1745329251994329576924, 0.3490658503988659153847,
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847, 0.3490658503988659153847,
			0.3490658503988659153847, 0.1745329251994329576924,
		},
	},
}
