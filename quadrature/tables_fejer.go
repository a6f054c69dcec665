package quadrature

// fejer1Table holds Fejer type 1 rules on [-1,1].
var fejer1Table = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.0,
		},
	},
	2: {
		x: []float64{
			-0.7071067811865475244008, 0.7071067811865475244008,
		},
		w: []float64{
			1.000000000000000000000, 1.000000000000000000000,
		},
	},
	3: {
		x: []float64{
			-0.8660254037844386467637, 0.0,
			0.8660254037844386467637,
		},
		w: []float64{
			0.4444444444444444444444, 1.111111111111111111111,
			0.4444444444444444444444,
		},
	},
	4: {
		x: []float64{
			-0.9238795325112867561282, -0.3826834323650897717285,
			0.3826834323650897717285, 0.9238795325112867561282,
		},
		w: []float64{
			0.2642977396044841585331, 0.7357022603955158414669,
			0.7357022603955158414669, 0.2642977396044841585331,
		},
	},
	5: {
		x: []float64{
			-0.9510565162951535721164, -0.5877852522924731291687,
			0.0, 0.5877852522924731291687,
			0.9510565162951535721164,
		},
		w: []float64{
			0.1677812284666834909539, 0.5255521048666498423794,
			0.6133333333333333333333, 0.5255521048666498423794,
			0.1677812284666834909539,
		},
	},
	6: {
		x: []float64{
			-0.9659258262890682867497, -0.7071067811865475244008,
			-0.2588190451025207623489, 0.2588190451025207623489,
			0.7071067811865475244008, 0.9659258262890682867497,
		},
		w: []float64{
			0.1186610213812358562747, 0.3777777777777777777778,
			0.5035612008409863659475, 0.5035612008409863659475,
			0.3777777777777777777778, 0.1186610213812358562747,
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
			0.08671618072672246342963, 0.2878313947886918657149,
			0.3982415401308441742568, 0.4544217687074829931973,
			0.3982415401308441742568, 0.2878313947886918657149,
			0.08671618072672246342963,
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
			0.06698294569858981690249, 0.2229879330145788139462,
			0.3241525190645243543472, 0.3858766022223070148041,
			0.3858766022223070148041, 0.3241525190645243543472,
			0.2229879330145788139462, 0.06698294569858981690249,
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
			0.05273664990990677839973, 0.1791887125220458553792,
			0.2640372225410044056699, 0.3308451751681364349780,
			0.3463844797178130511464, 0.3308451751681364349780,
			0.2640372225410044056699, 0.1791887125220458553792,
			0.05273664990990677839973,
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
			0.04293911957413077300139, 0.1458749193773909036355,
			0.2203174603174603174603, 0.2808792186638754659560,
			0.3099892820671425399468, 0.3099892820671425399468,
			0.2808792186638754659560, 0.2203174603174603174603,
			0.1458749193773909036355, 0.04293911957413077300139,
		},
	},
}

// fejer2Table holds Fejer type 2 rules on [-1,1].
var fejer2Table = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.000000000000000000000,
		},
	},
	2: {
		x: []float64{
			-0.5000000000000000000000, 0.5000000000000000000000,
		},
		w: []float64{
			1.000000000000000000000, 1.000000000000000000000,
		},
	},
	3: {
		x: []float64{
			-0.7071067811865475244008, 0.0,
			0.7071067811865475244008,
		},
		w: []float64{
			0.6666666666666666666667, 0.6666666666666666666667,
			0.6666666666666666666667,
		},
	},
	4: {
		x: []float64{
			-0.8090169943749474241023, -0.3090169943749474241023,
			0.3090169943749474241023, 0.8090169943749474241023,
		},
		w: []float64{
			0.4254644007500070101197, 0.5745355992499929898803,
			0.5745355992499929898803, 0.4254644007500070101197,
		},
	},
	5: {
		x: []float64{
			-0.8660254037844386467637, -0.5000000000000000000000,
			0.0, 0.5000000000000000000000,
			0.8660254037844386467637,
		},
		w: []float64{
			0.3111111111111111111111, 0.4000000000000000000000,
			0.5777777777777777777778, 0.4000000000000000000000,
			0.3111111111111111111111,
		},
	},
	6: {
		x: []float64{
			-0.9009688679024191262361, -0.6234898018587335305250,
			-0.2225209339563144042889, 0.2225209339563144042889,
			0.6234898018587335305250, 0.9009688679024191262361,
		},
		w: []float64{
			0.2269152467244295406102, 0.3267938603769863181674,
			0.4462908928985841412224, 0.4462908928985841412224,
			0.3267938603769863181674, 0.2269152467244295406102,
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
			0.1779646809620499010437, 0.2476190476190476190476,
			0.3934638904665215275277, 0.3619047619047619047619,
			0.3934638904665215275277, 0.2476190476190476190476,
			0.1779646809620499010437,
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
			0.1397697435050225151592, 0.2063696457302284072574,
			0.3142857142857142857143, 0.3395748964790347918692,
			0.3395748964790347918692, 0.3142857142857142857143,
			0.2063696457302284072574, 0.1397697435050225151592,
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
			0.1147810750857217631753, 0.1654331942222275632658,
			0.2737903534857068082533, 0.2790112502222168811786,
			0.3339682539682539682540, 0.2790112502222168811786,
			0.2737903534857068082533, 0.1654331942222275632658,
			0.1147810750857217631753,
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
			0.09441954173982806146119, 0.1411354380109715941365,
			0.2263866903636005655194, 0.2530509772156453260124,
			0.2850073526699544528704, 0.2850073526699544528704,
			0.2530509772156453260124, 0.2263866903636005655194,
			0.1411354380109715941365, 0.09441954173982806146119,
		},
	},
}
