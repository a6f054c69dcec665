package quadrature

// hermiteTable holds Gauss-Hermite rules for weight exp(-x^2) on (-inf,+inf).
var hermiteTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			1.772453850905516027298,
		},
	},
	2: {
		x: []float64{
			-0.7071067811865475244008, 0.7071067811865475244008,
		},
		w: []float64{
			0.8862269254527580136491, 0.8862269254527580136491,
		},
	},
	3: {
		x: []float64{
			-1.224744871391589049099, 0.0,
			1.224744871391589049099,
		},
		w: []float64{
			0.2954089751509193378830, 1.181635900603677351532,
			0.2954089751509193378830,
		},
	},
	4: {
		x: []float64{
			-1.650680123885784555883, -0.5246476232752903178841,
			0.5246476232752903178841, 1.650680123885784555883,
		},
		w: []float64{
			0.08131283544724517714303, 0.8049140900055128365060,
			0.8049140900055128365060, 0.08131283544724517714303,
		},
	},
	5: {
		x: []float64{
			-2.020182870456085632929, -0.9585724646138185071128,
			0.0, 0.9585724646138185071128,
			2.020182870456085632929,
		},
		w: []float64{
			0.01995324205904591320774, 0.3936193231522411598285,
			0.9453087204829418812257, 0.3936193231522411598285,
			0.01995324205904591320774,
		},
	},
	6: {
		x: []float64{
			-2.350604973674492222834, -1.335849074013696949715,
			-0.4360774119276165086792, 0.4360774119276165086792,
			1.335849074013696949715, 2.350604973674492222834,
		},
		w: []float64{
			0.004530009905508845640857, 0.1570673203228566439163,
			0.7246295952243925240919, 0.7246295952243925240919,
			0.1570673203228566439163, 0.004530009905508845640857,
		},
	},
	7: {
		x: []float64{
			-2.651961356835233492447, -1.673551628767471445032,
			-0.8162878828589646630387, 0.0,
			0.8162878828589646630387, 1.673551628767471445032,
			2.651961356835233492447,
		},
		w: []float64{
			0.0009717812450995191541494, 0.05451558281912703059218,
			0.4256072526101278005203, 0.8102646175568073267649,
			0.4256072526101278005203, 0.05451558281912703059218,
			0.0009717812450995191541494,
		},
	},
	8: {
		x: []float64{
			-2.930637420257244019224, -1.981656756695842925855,
			-1.157193712446780194721, -0.3811869902073221168547,
			0.3811869902073221168547, 1.157193712446780194721,
			1.981656756695842925855, 2.930637420257244019224,
		},
		w: []float64{
			0.0001996040722113676192061, 0.01707798300741347545620,
			0.2078023258148918795433, 0.6611470125582412910304,
			0.6611470125582412910304, 0.2078023258148918795433,
			0.01707798300741347545620, 0.0001996040722113676192061,
		},
	},
	9: {
		x: []float64{
			-3.190993201781527607230, -2.266580584531843111802,
			-1.468553289216667931667, -0.7235510187528375733226,
			0.0, 0.7235510187528375733226,
			1.468553289216667931667, 2.266580584531843111802,
			3.190993201781527607230,
		},
		w: []float64{
			0.00003960697726326438190459, 0.004943624275536947217225,
			0.08847452739437657328798, 0.4326515590025557501998,
			0.7202352156060509571243, 0.4326515590025557501998,
			0.08847452739437657328798, 0.004943624275536947217225,
			0.00003960697726326438190459,
		},
	},
	10: {
		x: []float64{
			-3.436159118837737603327, -2.532731674232789796409,
			-1.756683649299881773451, -1.036610829789513654177,
			-0.3429013272237046087892, 0.3429013272237046087892,
			1.036610829789513654177, 1.756683649299881773451,
			2.532731674232789796409, 3.436159118837737603327,
		},
		w: []float64{
			0.000007640432855232620629159, 0.001343645746781232692202,
			0.03387439445548106313616, 0.2401386110823146864165,
			0.6108626337353257987836, 0.6108626337353257987836,
			0.2401386110823146864165, 0.03387439445548106313616,
			0.001343645746781232692202, 0.000007640432855232620629159,
		},
	},
	11: {
		x: []float64{
			-3.668470846559582518458, -2.783290099781651770837,
			-2.025948015825755335166, -1.326557084494932855950,
			-0.6568095668820997650246, 0.0,
			0.6568095668820997650246, 1.326557084494932855950,
			2.025948015825755335166, 2.783290099781651770837,
			3.668470846559582518458,
		},
		w: []float64{
			0.000001439560393714258220331, 0.0003468194663233455106434,
			0.01191139544491153245039, 0.1172278751677085033818,
			0.4293597523561250284461, 0.6547592869145917792039,
			0.4293597523561250284461, 0.1172278751677085033818,
			0.01191139544491153245039, 0.0003468194663233455106434,
			0.000001439560393714258220331,
		},
	},
	12: {
		x: []float64{
			-3.889724897869781919272, -3.020637025120889771711,
			-2.279507080501059900188, -1.597682635152604796710,
			-0.9477883912401637437046, -0.3142403762543591112766,
			0.3142403762543591112766, 0.9477883912401637437046,
			1.597682635152604796710, 2.279507080501059900188,
			3.020637025120889771711, 3.889724897869781919272,
		},
		w: []float64{
			2.658551684356301606023e-7, 0.00008573687043587858654569,
			0.003905390584629061859994, 0.05160798561588392999187,
			0.2604923102641611292334, 0.5701352362624795783471,
			0.5701352362624795783471, 0.2604923102641611292334,
			0.05160798561588392999187, 0.003905390584629061859994,
			0.00008573687043587858654569, 2.658551684356301606023e-7,
		},
	},
	13: {
		x: []float64{
			-4.101337596178639641179, -3.246608978372409988122,
			-2.519735685678237883430, -1.853107651601512142004,
			-1.220055036590748426222, -0.6057638791710601130805,
			0.0, 0.6057638791710601130805,
			1.220055036590748426222, 1.853107651601512142004,
			2.519735685678237883430, 3.246608978372409988122,
			4.101337596178639641179,
		},
		w: []float64{
			4.825731850073131088350e-8, 0.00002043036040270707312487,
			0.001207459992719385947309, 0.02086277529616993921660,
			0.1403233206870234377628, 0.4216162968985432217469,
			0.6043931879211616423421, 0.4216162968985432217469,
			0.1403233206870234377628, 0.02086277529616993921660,
			0.001207459992719385947309, 0.00002043036040270707312487,
			4.825731850073131088350e-8,
		},
	},
	14: {
		x: []float64{
			-4.304448570473631812621, -3.462656933602270550209,
			-2.748470724985402568625, -2.095183258507716815735,
			-1.476682731141140870584, -0.8787137873293994161147,
			-0.2917455106725620784461, 0.2917455106725620784461,
			0.8787137873293994161147, 1.476682731141140870584,
			2.095183258507716815735, 2.748470724985402568625,
			3.462656933602270550209, 4.304448570473631812621,
		},
		w: []float64{
			8.628591168125157945320e-9, 0.000004716484355018916748877,
			0.0003550926135519236104837, 0.007850054726457944310486,
			0.06850553422346520553872, 0.2731056090642466033526,
			0.5364059097120901497949, 0.5364059097120901497949,
			0.2731056090642466033526, 0.06850553422346520553872,
			0.007850054726457944310486, 0.0003550926135519236104837,
			0.000004716484355018916748877, 8.628591168125157945320e-9,
		},
	},
	15: {
		x: []float64{
			-4.499990707309391553664, -3.669950373404452534729,
			-2.967166927905603248489, -2.325732486173857745454,
			-1.719992575186488932416, -1.136115585210920666319,
			-0.5650695832555757485260, 0.0,
			0.5650695832555757485260, 1.136115585210920666319,
			1.719992575186488932416, 2.325732486173857745454,
			2.967166927905603248489, 3.669950373404452534729,
			4.499990707309391553664,
		},
		w: []float64{
			1.522475804253517020161e-9, 0.000001059115547711066635775,
			0.0001000044412324998681273, 0.002778068842912775896079,
			0.03078003387254608222868, 0.1584889157959357468838,
			0.4120286874988986270259, 0.5641003087264175328526,
			0.4120286874988986270259, 0.1584889157959357468838,
			0.03078003387254608222868, 0.002778068842912775896079,
			0.0001000044412324998681273, 0.000001059115547711066635775,
			1.522475804253517020161e-9,
		},
	},
	16: {
		x: []float64{
			-4.688738939305818364688, -3.869447904860122698719,
			-3.176999161979956026814, -2.546202157847481362159,
			-1.951787990916253977435, -1.380258539198880796372,
			-0.8229514491446558925825, -0.2734810461381524521583,
			0.2734810461381524521583, 0.8229514491446558925825,
			1.380258539198880796372, 1.951787990916253977435,
			2.546202157847481362159, 3.176999161979956026814,
			3.869447904860122698719, 4.688738939305818364688,
		},
		w: []float64{
			2.654807474011182244709e-10, 2.320980844865210653387e-7,
			0.00002711860092537881512019, 0.0009322840086241805299143,
			0.01288031153550997368346, 0.08381004139898582941542,
			0.2806474585285336753695, 0.5079294790166137419135,
			0.5079294790166137419135, 0.2806474585285336753695,
			0.08381004139898582941542, 0.01288031153550997368346,
			0.0009322840086241805299143, 0.00002711860092537881512019,
			2.320980844865210653387e-7, 2.654807474011182244709e-10,
		},
	},
	17: {
		x: []float64{
			-4.871345193674403088349, -4.061946675875474306892,
			-3.378932091141494083383, -2.757762915703888730926,
			-2.173502826666620819275, -1.612924314221231333113,
			-1.067648725743450553630, -0.5316330013426547313491,
			0.0, 0.5316330013426547313491,
			1.067648725743450553630, 1.612924314221231333113,
			2.173502826666620819275, 2.757762915703888730926,
			3.378932091141494083383, 4.061946675875474306892,
			4.871345193674403088349,
		},
		w: []float64{
			4.580578930798633305809e-11, 4.977078981630794052279e-8,
			0.000007112289140021309583533, 0.0002986432866977530411513,
			0.005067349957627537911701, 0.04092003414975627980950,
			0.1726482976700970792176, 0.4018264694704119565776,
			0.5309179376248635603319, 0.4018264694704119565776,
			0.1726482976700970792176, 0.04092003414975627980950,
			0.005067349957627537911701, 0.0002986432866977530411513,
			0.000007112289140021309583533, 4.977078981630794052279e-8,
			4.580578930798633305809e-11,
		},
	},
	18: {
		x: []float64{
			-5.048364008874466768372, -4.248117873568126463023,
			-3.573769068486266079501, -2.961377505531606844779,
			-2.386299089166686000265, -1.835531604261628892254,
			-1.300920858389617365666, -0.7766829192674116613167,
			-0.2582677505190967592581, 0.2582677505190967592581,
			0.7766829192674116613167, 1.300920858389617365666,
			1.835531604261628892254, 2.386299089166686000265,
			2.961377505531606844779, 3.573769068486266079501,
			4.248117873568126463023, 5.048364008874466768372,
		},
		w: []float64{
			7.828199772115891029251e-12, 1.046720579579208244436e-8,
			0.000001810654481093430409597, 0.00009181126867929403529147,
			0.001888522630268417894382, 0.01864004238754465192193,
			0.09730174764131542933085, 0.2848072856699795785956,
			0.4834956947254555528764, 0.4834956947254555528764,
			0.2848072856699795785956, 0.09730174764131542933085,
			0.01864004238754465192193, 0.001888522630268417894382,
			0.00009181126867929403529147, 0.000001810654481093430409597,
			1.046720579579208244436e-8, 7.828199772115891029251e-12,
		},
	},
	19: {
		x: []float64{
			-5.220271690537482164610, -4.428532806603779437235,
			-3.762187351964020097515, -3.157848818347602281843,
			-2.591133789794542564921, -2.049231709850619375751,
			-1.524170619393533031834, -1.010368387134311351369,
			-0.5035201634238882093738, 0.0,
			0.5035201634238882093738, 1.010368387134311351369,
			1.524170619393533031834, 2.049231709850619375751,
			2.591133789794542564921, 3.157848818347602281843,
			3.762187351964020097515, 4.428532806603779437235,
			5.220271690537482164610,
		},
		w: []float64{
			1.326297094498515751853e-12, 2.163051009863554750197e-9,
			4.488243147223122951794e-7, 0.00002720919776316162577119,
			0.0006708775214071811061947, 0.007988866777722990209222,
			0.05081038690905206735699, 0.1836327013069970741561,
			0.3916089886130302445040, 0.5029748882761865308407,
			0.3916089886130302445040, 0.1836327013069970741561,
			0.05081038690905206735699, 0.007988866777722990209222,
			0.0006708775214071811061947, 0.00002720919776316162577119,
			4.488243147223122951794e-7, 2.163051009863554750197e-9,
			1.326297094498515751853e-12,
		},
	},
	20: {
		x: []float64{
			-5.387480890011232862017, -4.603682449550744273078,
			-3.944764040115625210376, -3.347854567383216326915,
			-2.788806058428130480525, -2.254974002089275523082,
			-1.738537712116586206781, -1.234076215395323007886,
			-0.7374737285453943587056, -0.2453407083009012499038,
			0.2453407083009012499038, 0.7374737285453943587056,
			1.234076215395323007886, 1.738537712116586206781,
			2.254974002089275523082, 2.788806058428130480525,
			3.347854567383216326915, 3.944764040115625210376,
			4.603682449550744273078, 5.387480890011232862017,
		},
		w: []float64{
			2.229393645534151292523e-13, 4.399340992273180553629e-10,
			1.086069370769281694000e-7, 0.000007802556478532063694146,
			0.0002283386360163539672571, 0.003243773342237861832183,
			0.02481052088746361088216, 0.1090172060200233200138,
			0.2866755053628341297197, 0.4622436696006100896503,
			0.4622436696006100896503, 0.2866755053628341297197,
			0.1090172060200233200138, 0.02481052088746361088216,
			0.003243773342237861832183, 0.0002283386360163539672571,
			0.000007802556478532063694146, 1.086069370769281694000e-7,
			4.399340992273180553629e-10, 2.229393645534151292523e-13,
		},
	},
	30: {
		x: []float64{
			-6.863345293529891581061, -6.138279220123934620395,
			-5.533147151567495725118, -4.988918968589943944486,
			-4.483055357092518341887, -4.003908603861228815228,
			-3.544443873155349886925, -3.099970529586441748689,
			-2.667132124535617200571, -2.243391467761504072473,
			-1.826741143603688038836, -1.415527800198188511941,
			-1.008338271046723461805, -0.6039210586255523077782,
			-0.2011285765488714855458, 0.2011285765488714855458,
			0.6039210586255523077782, 1.008338271046723461805,
			1.415527800198188511941, 1.826741143603688038836,
			2.243391467761504072473, 2.667132124535617200571,
			3.099970529586441748689, 3.544443873155349886925,
			4.003908603861228815228, 4.483055357092518341887,
			4.988918968589943944486, 5.533147151567495725118,
			6.138279220123934620395, 6.863345293529891581061,
		},
		w: []float64{
			2.908254700131226229411e-21, 2.810333602750903708763e-17,
			2.878607080548706062192e-14, 8.106186297463044203993e-12,
			9.178580424378528208501e-10, 5.108522450775946277390e-8,
			0.000001579094887324710288346, 0.00002938725228922987641501,
			0.0003483101243186855234210, 0.002737922473067658462989,
			0.01470382970482668351528, 0.05514417687023425116808,
			0.1467358475408900997517, 0.2801309308392126674135,
			0.3863948895418138625556, 0.3863948895418138625556,
			0.2801309308392126674135, 0.1467358475408900997517,
			0.05514417687023425116808, 0.01470382970482668351528,
			0.002737922473067658462989, 0.0003483101243186855234210,
			0.00002938725228922987641501, 0.000001579094887324710288346,
			5.108522450775946277390e-8, 9.178580424378528208501e-10,
			8.106186297463044203993e-12, 2.878607080548706062192e-14,
			2.810333602750903708763e-17, 2.908254700131226229411e-21,
		},
	},
	31: {
		x: []float64{
			-6.995680123718540275325, -6.275078704942860142704,
			-5.673961444618588329633, -5.133595577112380704586,
			-4.631559506312859942067, -4.156271755818145172483,
			-3.700743403231469422450, -3.260320732313540810465,
			-2.831680453390205455702, -2.412317705480420105174,
			-2.000258548935638965798, -1.593885860472139826139,
			-1.191826998350046426082, -0.7928769769153089396859,
			-0.3959427364714231109467, 0.0,
			0.3959427364714231109467, 0.7928769769153089396859,
			1.191826998350046426082, 1.593885860472139826139,
			2.000258548935638965798, 2.412317705480420105174,
			2.831680453390205455702, 3.260320732313540810465,
			3.700743403231469422450, 4.156271755818145172483,
			4.631559506312859942067, 5.133595577112380704586,
			5.673961444618588329633, 6.275078704942860142704,
			6.995680123718540275325,
		},
		w: []float64{
			4.618968394464205021329e-22, 5.110609007927156407394e-18,
			5.899556498753872990384e-15, 1.860373521452146524374e-12,
			2.352492003208641633986e-10, 1.461198834491053073528e-8,
			5.043712558939799742537e-7, 0.00001049860275767560632281,
			0.0001395209039504704338237, 0.001233683307306888265518,
			0.007482799914035198483457, 0.03184723073130033277721,
			0.09671794816087045355803, 0.2121327886687647798777,
			0.3387726578941077246757, 0.3957785560986095451418,
			0.3387726578941077246757, 0.2121327886687647798777,
			0.09671794816087045355803, 0.03184723073130033277721,
			0.007482799914035198483457, 0.001233683307306888265518,
			0.0001395209039504704338237, 0.00001049860275767560632281,
			5.043712558939799742537e-7, 1.461198834491053073528e-8,
			2.352492003208641633986e-10, 1.860373521452146524374e-12,
			5.899556498753872990384e-15, 5.110609007927156407394e-18,
			4.618968394464205021329e-22,
		},
	},
	32: {
		x: []float64{
			-7.125813909830727572795, -6.409498149269660412174,
			-5.812225949515913832766, -5.275550986515880127819,
			-4.777164503502596393036, -4.305547953351198445263,
			-3.853755485471444643888, -3.417167492818570735874,
			-2.992490825002374206285, -2.577249537732317454031,
			-2.169499183606112173306, -1.767654109463201604628,
			-1.370376410952871838162, -0.9765004635896828384847,
			-0.5849787654359324484670, -0.1948407415693993267087,
			0.1948407415693993267087, 0.5849787654359324484670,
			0.9765004635896828384847, 1.370376410952871838162,
			1.767654109463201604628, 2.169499183606112173306,
			2.577249537732317454031, 2.992490825002374206285,
			3.417167492818570735874, 3.853755485471444643888,
			4.305547953351198445263, 4.777164503502596393036,
			5.275550986515880127819, 5.812225949515913832766,
			6.409498149269660412174, 7.125813909830727572795,
		},
		w: []float64{
			7.310676427384162393274e-23, 9.231736536518292233494e-19,
			1.197344017092848665829e-15, 4.215010211326447572969e-13,
			5.933291463396638614512e-11, 4.098832164770896618235e-9,
			1.574167792545594029269e-7, 0.000003650585129562376057370,
			0.00005416584061819982558002, 0.0005362683655279720459702,
			0.003654890326654428079126, 0.01755342883157343030344,
			0.06045813095591261418659, 0.1512697340766424825751,
			0.2774581423025298981377, 0.3752383525928023928668,
			0.3752383525928023928668, 0.2774581423025298981377,
			0.1512697340766424825751, 0.06045813095591261418659,
			0.01755342883157343030344, 0.003654890326654428079126,
			0.0005362683655279720459702, 0.00005416584061819982558002,
			0.000003650585129562376057370, 1.574167792545594029269e-7,
			4.098832164770896618235e-9, 5.933291463396638614512e-11,
			4.215010211326447572969e-13, 1.197344017092848665829e-15,
			9.231736536518292233494e-19, 7.310676427384162393274e-23,
		},
	},
	40: {
		x: []float64{
			-8.098761139250850052013, -7.411582531485468809439,
			-6.840237305249355417846, -6.328255351220081955657,
			-5.854095056030400108043, -5.406654247970127608400,
			-4.979260978545255871627, -4.567502072844394855169,
			-4.168257066832500201536, -3.779206753435223493119,
			-3.398558265859628346294, -3.024879883901284437677,
			-2.656995998442895794981, -2.293917141875083421885,
			-1.934791472282295793298, -1.578869894931613886258,
			-1.225480109046289030949, -0.8740066123570880774379,
			-0.5238747138322771926149, -0.1745372145975823834895,
			0.1745372145975823834895, 0.5238747138322771926149,
			0.8740066123570880774379, 1.225480109046289030949,
			1.578869894931613886258, 1.934791472282295793298,
			2.293917141875083421885, 2.656995998442895794981,
			3.024879883901284437677, 3.398558265859628346294,
			3.779206753435223493119, 4.168257066832500201536,
			4.567502072844394855169, 4.979260978545255871627,
			5.406654247970127608400, 5.854095056030400108043,
			6.328255351220081955657, 6.840237305249355417846,
			7.411582531485468809439, 8.098761139250850052013,
		},
		w: []float64{
			2.591043713847081473502e-29, 8.544056963775510773883e-25,
			2.567593365411669660493e-21, 1.989181012116502485618e-18,
			6.008358789490816690307e-16, 8.805707645216132256621e-14,
			7.156528052690318708364e-12, 3.525620791365411902915e-10,
			1.121236083227581017452e-8, 2.411144163670523441785e-7,
			0.000003631576150693023511842, 0.00003936933981092492770431,
			0.0003138535945413314756468, 0.001871496829597952779484,
			0.008460888008258132439941, 0.02931256553617236984568,
			0.07847460586540439130889, 0.1633787327132714570815,
			0.2657282518773770761428, 0.3386432774255892182024,
			0.3386432774255892182024, 0.2657282518773770761428,
			0.1633787327132714570815, 0.07847460586540439130889,
			0.02931256553617236984568, 0.008460888008258132439941,
			0.001871496829597952779484, 0.0003138535945413314756468,
			0.00003936933981092492770431, 0.000003631576150693023511842,
			2.411144163670523441785e-7, 1.121236083227581017452e-8,
			3.525620791365411902915e-10, 7.156528052690318708364e-12,
			8.805707645216132256621e-14, 6.008358789490816690307e-16,
			1.989181012116502485618e-18, 2.567593365411669660493e-21,
			8.544056963775510773883e-25, 2.591043713847081473502e-29,
		},
	},
	50: {
		x: []float64{
			-9.182406958129317366347, -8.522771030917804189138,
			-7.975622368205636554245, -7.486409429864194266821,
			-7.034323509770610648808, -6.608647973855359006128,
			-6.202952519274671616315, -5.812994675420406059157,
			-5.435786087224948141616, -5.069117584917235032452,
			-4.711293666169042787394, -4.360973160454578664322,
			-4.017068172858134387881, -3.678677062515269281719,
			-3.345038313937891090222, -3.015497769574522418858,
			-2.689484702267745072548, -2.366493904298663828905,
			-2.046071968686409207851, -1.727806547515898558530,
			-1.411317754898300062015, -1.096251128957681642350,
			-0.7822717295546068858116, -0.4690590566782360862441,
			-0.1563025468894686754380, 0.1563025468894686754380,
			0.4690590566782360862441, 0.7822717295546068858116,
			1.096251128957681642350, 1.411317754898300062015,
			1.727806547515898558530, 2.046071968686409207851,
			2.366493904298663828905, 2.689484702267745072548,
			3.015497769574522418858, 3.345038313937891090222,
			3.678677062515269281719, 4.017068172858134387881,
			4.360973160454578664322, 4.711293666169042787394,
			5.069117584917235032452, 5.435786087224948141616,
			5.812994675420406059157, 6.202952519274671616315,
			6.608647973855359006128, 7.034323509770610648808,
			7.486409429864194266821, 7.975622368205636554245,
			8.522771030917804189138, 9.182406958129317366347,
		},
		w: []float64{
			1.833794048573431376416e-37, 1.673801667907794713388e-32,
			1.215244123404500641270e-28, 2.137658308360083384733e-25,
			1.417093599573401623765e-22, 4.470984365407890728104e-20,
			7.742382957043406119467e-18, 8.094261893465159859333e-16,
			5.465944031815589456019e-14, 2.506655523899675739428e-12,
			8.111877364930216153580e-11, 1.909040543811898449314e-9,
			3.346793404021429571156e-8, 4.457029966817833298602e-7,
			0.000004581682707955525971753, 0.00003684019053780724168632,
			0.0002342698921092557659345, 0.001189011781749644997043,
			0.004853263826171947111009, 0.01603194106841218513434,
			0.04307915915676554546147, 0.09454893547708623386894,
			0.1700324556771640148208, 0.2511308563320024444648,
			0.3050851292043988076206, 0.3050851292043988076206,
			0.2511308563320024444648, 0.1700324556771640148208,
			0.09454893547708623386894, 0.04307915915676554546147,
			0.01603194106841218513434, 0.004853263826171947111009,
			0.001189011781749644997043, 0.0002342698921092557659345,
			0.00003684019053780724168632, 0.000004581682707955525971753,
			4.457029966817833298602e-7, 3.346793404021429571156e-8,
			1.909040543811898449314e-9, 8.111877364930216153580e-11,
			2.506655523899675739428e-12, 5.465944031815589456019e-14,
			8.094261893465159859333e-16, 7.742382957043406119467e-18,
			4.470984365407890728104e-20, 1.417093599573401623765e-22,
			2.137658308360083384733e-25, 1.215244123404500641270e-28,
			1.673801667907794713388e-32, 1.833794048573431376416e-37,
		},
	},
	60: {
		x: []float64{
			-10.15910924618008705819, -9.520903677013318249221,
			-8.992398001404944646786, -8.520569284117630862271,
			-8.085188654249021511174, -7.675839937504887827464,
			-7.286276594395599557061, -6.912381532189318870972,
			-6.551259167062920929535, -6.200773557993437689475,
			-5.859290196394234771154, -5.525521086138684267459,
			-5.198426534576293551709, -4.877150077473151148092,
			-4.560973757935835301796, -4.249286435956006538147,
			-3.941560733926184610164, -3.637335876170731779737,
			-3.336204653547587112427, -3.037803338230749289080,
			-2.741803748069691750776, -2.447906902307685750055,
			-2.155837871229211007574, -1.865341531233031693033,
			-1.576179011975020399993, -1.288124674868893616440,
			-1.000963499560718013529, -0.7144887816725786039249,
			-0.4285000642206275388468, -0.1428012387034388707450,
			0.1428012387034388707450, 0.4285000642206275388468,
			0.7144887816725786039249, 1.000963499560718013529,
			1.288124674868893616440, 1.576179011975020399993,
			1.865341531233031693033, 2.155837871229211007574,
			2.447906902307685750055, 2.741803748069691750776,
			3.037803338230749289080, 3.336204653547587112427,
			3.637335876170731779737, 3.941560733926184610164,
			4.249286435956006538147, 4.560973757935835301796,
			4.877150077473151148092, 5.198426534576293551709,
			5.525521086138684267459, 5.859290196394234771154,
			6.200773557993437689475, 6.551259167062920929535,
			6.912381532189318870972, 7.286276594395599557061,
			7.675839937504887827464, 8.085188654249021511174,
			8.520569284117630862271, 8.992398001404944646786,
			9.520903677013318249221, 10.15910924618008705819,
		},
		w: []float64{
			1.109587247968308702042e-45, 2.439747588145201242103e-40,
			3.771626727120700567323e-36, 1.332559611764250850199e-32,
			1.715573147671745290995e-29, 1.029405997165086338127e-26,
			3.345756955752521642745e-24, 6.512567257496363499747e-22,
			8.153640473023832903794e-20, 6.923247909577652037493e-18,
			4.152444109694022727520e-16, 1.816624576259627735276e-14,
			5.948430516056091228105e-13, 1.488957349062800046533e-11,
			2.899359012807749021973e-10, 4.456822775225942013629e-9,
			5.475554619276680352720e-8, 5.433516134204913980880e-7,
			0.000004394286936267040761336, 0.00002918741904155531793036,
			0.0001602773346818449608348, 0.0007317735569655075107031,
			0.002791324828953064252768, 0.008932178360307811462872,
			0.02406127276610933844605, 0.05471897093218279548485,
			0.1052987636977856368860, 0.1717761569188850643984,
			0.2378689049586588507929, 0.2798531175228289822923,
			0.2798531175228289822923, 0.2378689049586588507929,
			0.1717761569188850643984, 0.1052987636977856368860,
			0.05471897093218279548485, 0.02406127276610933844605,
			0.008932178360307811462872, 0.002791324828953064252768,
			0.0007317735569655075107031, 0.0001602773346818449608348,
			0.00002918741904155531793036, 0.000004394286936267040761336,
			5.433516134204913980880e-7, 5.475554619276680352720e-8,
			4.456822775225942013629e-9, 2.899359012807749021973e-10,
			1.488957349062800046533e-11, 5.948430516056091228105e-13,
			1.816624576259627735276e-14, 4.152444109694022727520e-16,
			6.923247909577652037493e-18, 8.153640473023832903794e-20,
			6.512567257496363499747e-22, 3.345756955752521642745e-24,
			1.029405997165086338127e-26, 1.715573147671745290995e-29,
			1.332559611764250850199e-32, 3.771626727120700567323e-36,
			2.439747588145201242103e-40, 1.109587247968308702042e-45,
		},
	},
	63: {
		x: []float64{
			-10.43549987785416805347, -9.802875991297496363522,
			-9.279201954305039131940, -8.811858143728454644253,
			-8.380768345186321934301, -7.975595080142037318154,
			-7.590139519864106676248, -7.220316707888967846116,
			-6.863254433179536852735, -6.516834810682116060527,
			-6.179437992270596986242, -5.849788400081067346253,
			-5.526857252640303142505, -5.209797983040835486158,
			-4.897901864497574235075, -4.590566574443519022927,
			-4.287273335282440403173, -3.987569910419715748523,
			-3.691057700096346511732, -3.397381771330391185276,
			-3.106223027928256632914, -2.817291967283797775075,
			-2.530323630471201092686, -2.245073460481206629900,
			-1.961313858308148529392, -1.678831279172013752080,
			-1.397423748604962510757, -1.116898705099646269051,
			-0.8370710955894761597774, -0.5577616642790822166876,
			-0.2787953856711522398669, 0.0,
			0.2787953856711522398669, 0.5577616642790822166876,
			0.8370710955894761597774, 1.116898705099646269051,
			1.397423748604962510757, 1.678831279172013752080,
			1.961313858308148529392, 2.245073460481206629900,
			2.530323630471201092686, 2.817291967283797775075,
			3.106223027928256632914, 3.397381771330391185276,
			3.691057700096346511732, 3.987569910419715748523,
			4.287273335282440403173, 4.590566574443519022927,
			4.897901864497574235075, 5.209797983040835486158,
			5.526857252640303142505, 5.849788400081067346253,
			6.179437992270596986242, 6.516834810682116060527,
			6.863254433179536852735, 7.220316707888967846116,
			7.590139519864106676248, 7.975595080142037318154,
			8.380768345186321934301, 8.811858143728454644253,
			9.279201954305039131940, 9.802875991297496363522,
			10.43549987785416805347,
		},
		w: []float64{
			3.709920643490300558234e-48, 1.040077861522466722126e-42,
			1.979680470831991979003e-38, 8.468747819190356632810e-35,
			1.307130593082062439048e-31, 9.343783717565823964502e-29,
			3.602742663528516382023e-26, 8.296386311620997661575e-24,
			1.226662990914345577216e-21, 1.228843562883530369902e-19,
			8.692553695845852522256e-18, 4.485705868931581840694e-16,
			1.733581795578910443831e-14, 5.126506238519784699838e-13,
			1.180892184456969238180e-11, 2.150869829787496176791e-10,
			3.137192953538307864494e-9, 3.704162598489698098834e-8,
			3.573473294999087774615e-7, 0.000002839311449846928847123,
			0.00001870911300378872160278, 0.0001028488080068564255431,
			0.0004741170261032067543960, 0.001840922262244210376012,
			0.006043604455137571132092, 0.01682929919965210445591,
			0.03985826402781703286499, 0.08046708799420083238509,
			0.1387195081765846350722, 0.2044869534689739882259,
			0.2579988994313833261272, 0.2787669488492516543655,
			0.2579988994313833261272, 0.2044869534689739882259,
			0.1387195081765846350722, 0.08046708799420083238509,
			0.03985826402781703286499, 0.01682929919965210445591,
			0.006043604455137571132092, 0.001840922262244210376012,
			0.0004741170261032067543960, 0.0001028488080068564255431,
			0.00001870911300378872160278, 0.000002839311449846928847123,
			3.573473294999087774615e-7, 3.704162598489698098834e-8,
			3.137192953538307864494e-9, 2.150869829787496176791e-10,
			1.180892184456969238180e-11, 5.126506238519784699838e-13,
			1.733581795578910443831e-14, 4.485705868931581840694e-16,
			8.692553695845852522256e-18, 1.228843562883530369902e-19,
			1.226662990914345577216e-21, 8.296386311620997661575e-24,
			3.602742663528516382023e-26, 9.343783717565823964502e-29,
			1.307130593082062439048e-31, 8.468747819190356632810e-35,
			1.979680470831991979003e-38, 1.040077861522466722126e-42,
			3.709920643490300558234e-48,
		},
	},
	64: {
		x: []float64{
			-10.52612316796054588333, -9.895287586829539021204,
			-9.373159549646721162546, -8.907249099964769757296,
			-8.477529083379863090564, -8.073687285010225225859,
			-7.689540164040496828448, -7.321013032780949201190,
			-6.965241120551107529243, -6.620112262636027379037,
			-6.284011228774828235418, -5.955666326799486045345,
			-5.634052164349972147250, -5.318325224633270857324,
			-5.007779602198768196444, -4.701815647407499816098,
			-4.399917168228137647768, -4.101634474566656714971,
			-3.806571513945360461166, -3.514375935740906211540,
			-3.224731291992035725848, -2.937350823004621809685,
			-2.651972435430635011005, -2.368354588632401404112,
			-2.086272879881762020833, -1.805517171465544918904,
			-1.525889140209863662949, -1.247200156943117940694,
			-0.9692694230711780167435, -0.6919223058100445772682,
			-0.4149888241210786845769, -0.1383022449870097241150,
			0.1383022449870097241150, 0.4149888241210786845769,
			0.6919223058100445772682, 0.9692694230711780167435,
			1.247200156943117940694, 1.525889140209863662949,
			1.805517171465544918904, 2.086272879881762020833,
			2.368354588632401404112, 2.651972435430635011005,
			2.937350823004621809685, 3.224731291992035725848,
			3.514375935740906211540, 3.806571513945360461166,
			4.101634474566656714971, 4.399917168228137647768,
			4.701815647407499816098, 5.007779602198768196444,
			5.318325224633270857324, 5.634052164349972147250,
			5.955666326799486045345, 6.284011228774828235418,
			6.620112262636027379037, 6.965241120551107529243,
			7.321013032780949201190, 7.689540164040496828448,
			8.073687285010225225859, 8.477529083379863090564,
			8.907249099964769757296, 9.373159549646721162546,
			9.895287586829539021204, 10.52612316796054588333,
		},
		w: []float64{
			5.535706535856942820575e-49, 1.679747990108159218666e-43,
			3.421138011255740504327e-39, 1.557390624629763802309e-35,
			2.549660899112999256605e-32, 1.929103595464966850302e-29,
			7.861797788925910369100e-27, 1.911706883300642829958e-24,
			2.982862784279851154479e-22, 3.152254566503781416121e-20,
			2.351884710675819116958e-18, 1.280093391322438041640e-16,
			5.218623726590847522958e-15, 1.628340730709720362084e-13,
			3.959177766947723927236e-12, 7.615217250145451353315e-11,
			1.173616742321549343543e-9, 1.465125316476109354927e-8,
			1.495532936727247061102e-7, 0.000001258340251031184576158,
			0.000008788499230850359181444, 0.00005125929135786274660822,
			0.0002509836985130624860824, 0.001036329099507577663457,
			0.003622586978534458760668, 0.01075604050987913704947,
			0.02720312895368891845383, 0.05873998196409943454969,
			0.1084983493061868406330, 0.1716858423490837020007,
			0.2329947860626780466506, 0.2713774249413039779456,
			0.2713774249413039779456, 0.2329947860626780466506,
			0.1716858423490837020007, 0.1084983493061868406330,
			0.05873998196409943454969, 0.02720312895368891845383,
			0.01075604050987913704947, 0.003622586978534458760668,
			0.001036329099507577663457, 0.0002509836985130624860824,
			0.00005125929135786274660822, 0.000008788499230850359181444,
			0.000001258340251031184576158, 1.495532936727247061102e-7,
			1.465125316476109354927e-8, 1.173616742321549343543e-9,
			7.615217250145451353315e-11, 3.959177766947723927236e-12,
			1.628340730709720362084e-13, 5.218623726590847522958e-15,
			1.280093391322438041640e-16, 2.351884710675819116958e-18,
			3.152254566503781416121e-20, 2.982862784279851154479e-22,
			1.911706883300642829958e-24, 7.861797788925910369100e-27,
			1.929103595464966850302e-29, 2.549660899112999256605e-32,
			1.557390624629763802309e-35, 3.421138011255740504327e-39,
			1.679747990108159218666e-43, 5.535706535856942820575e-49,
		},
	},
	65: {
		x: []float64{
			-10.61602298187828118906, -9.986941691676684752895,
			-9.466329320155384562092, -9.001823322959133019574,
			-8.573444744417909205130, -8.170906178052585321299,
			-7.788039082989570782574, -7.420778834366324236485,
			-7.066267940306892836956, -6.722399820165734437133,
			-6.387563739787091087663, -6.060491778831505214318,
			-5.740161823690225521448, -5.425733297697349333779,
			-5.116503004721412474034, -4.811873852027464764694,
			-4.511332111368213385201, -4.214430509971954607662,
			-3.920775404444723807349, -3.630016877632895333807,
			-3.341840968446830053486, -3.055963484328671004720,
			-2.772125005157091673824, -2.490086795303935506653,
			-2.209627415169184363640, -1.930539875977225501778,
			-1.652629219040325410196, -1.375710427723668336131,
			-1.099606600056944950337, -0.8241473244024128610560,
			-0.5491672112215991845719, -0.2745045417539447558551,
			0.0, 0.2745045417539447558551,
			0.5491672112215991845719, 0.8241473244024128610560,
			1.099606600056944950337, 1.375710427723668336131,
			1.652629219040325410196, 1.930539875977225501778,
			2.209627415169184363640, 2.490086795303935506653,
			2.772125005157091673824, 3.055963484328671004720,
			3.341840968446830053486, 3.630016877632895333807,
			3.920775404444723807349, 4.214430509971954607662,
			4.511332111368213385201, 4.811873852027464764694,
			5.116503004721412474034, 5.425733297697349333779,
			5.740161823690225521448, 6.060491778831505214318,
			6.387563739787091087663, 6.722399820165734437133,
			7.066267940306892836956, 7.420778834366324236485,
			7.788039082989570782574, 8.170906178052585321299,
			8.573444744417909205130, 9.001823322959133019574,
			9.466329320155384562092, 9.986941691676684752895,
			10.61602298187828118906,
		},
		w: []float64{
			8.251610813252446405187e-50, 2.707675845283276322451e-44,
			5.896284465978932192384e-40, 2.854184903278626280838e-36,
			4.952586255020598792104e-33, 3.963286987074686823618e-30,
			1.705911581075802731490e-27, 4.376974194871846918092e-25,
			7.201610789135007578369e-23, 8.022218735424031283831e-21,
			6.307891045586099878963e-19, 3.618199619042864854929e-17,
			1.554663572238096049417e-15, 5.113917481716524490100e-14,
			1.311251610639025694302e-12, 2.660865347792955484133e-11,
			4.328656153448509748214e-10, 5.707582932778774912504e-9,
			6.157796221450538485994e-8, 5.480456035017994982440e-7,
			0.000004052249391023733760930, 0.00002504534289049583212019,
			0.0001300829162984512043824, 0.0005703989675237715247259,
			0.002119981632036841655805, 0.006701404538005737139486,
			0.01806943311270358900640, 0.04166110876247843989095,
			0.08230016336973522515433, 0.1395261394828439530078,
			0.2032505741544418977477, 0.2546288118527901038876,
			0.2744782265592631673753, 0.2546288118527901038876,
			0.2032505741544418977477, 0.1395261394828439530078,
			0.08230016336973522515433, 0.04166110876247843989095,
			0.01806943311270358900640, 0.006701404538005737139486,
			0.002119981632036841655805, 0.0005703989675237715247259,
			0.0001300829162984512043824, 0.00002504534289049583212019,
			0.000004052249391023733760930, 5.480456035017994982440e-7,
			6.157796221450538485994e-8, 5.707582932778774912504e-9,
			4.328656153448509748214e-10, 2.660865347792955484133e-11,
			1.311251610639025694302e-12, 5.113917481716524490100e-14,
			1.554663572238096049417e-15, 3.618199619042864854929e-17,
			6.307891045586099878963e-19, 8.022218735424031283831e-21,
			7.201610789135007578369e-23, 4.376974194871846918092e-25,
			1.705911581075802731490e-27, 3.963286987074686823618e-30,
			4.952586255020598792104e-33, 2.854184903278626280838e-36,
			5.896284465978932192384e-40, 2.707675845283276322451e-44,
			8.251610813252446405187e-50,
		},
	},
}

// hermiteProbabilistTable holds Gauss-Hermite rules for weight exp(-x^2/2).
var hermiteProbabilistTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.506628274631000502416,
		},
	},
	2: {
		x: []float64{
			-1.000000000000000000000, 1.000000000000000000000,
		},
		w: []float64{
			1.253314137315500251208, 1.253314137315500251208,
		},
	},
	3: {
		x: []float64{
			-1.732050807568877293527, 0.0,
			1.732050807568877293527,
		},
		w: []float64{
			0.4177713791051667504026, 1.671085516420667001611,
			0.4177713791051667504026,
		},
	},
	4: {
		x: []float64{
			-2.334414218338977239318, -0.7419637843027258576485,
			0.7419637843027258576485, 2.334414218338977239318,
		},
		w: []float64{
			0.1149937146845058813642, 1.138320422630994369844,
			1.138320422630994369844, 0.1149937146845058813642,
		},
	},
	5: {
		x: []float64{
			-2.856970013872805654162, -1.355626179974265865831,
			0.0, 1.355626179974265865831,
			2.856970013872805654162,
		},
		w: []float64{
			0.02821814553321599105884, 0.5566617852140174595048,
			1.336868413136533601288, 0.5566617852140174595048,
			0.02821814553321599105884,
		},
	},
	6: {
		x: []float64{
			-3.324257433552118952362, -1.889175877753710675506,
			-0.6167065901925941521937, 0.6167065901925941521937,
			1.889175877753710675506, 3.324257433552118952362,
		},
		w: []float64{
			0.006406401446055072283033, 0.2221267346061831239493,
			1.024781001263262054976, 1.024781001263262054976,
			0.2221267346061831239493, 0.006406401446055072283033,
		},
	},
	7: {
		x: []float64{
			-3.750439717725742256304, -2.366759410734541288619,
			-1.154405394739968127240, 0.0,
			1.154405394739968127240, 2.366759410734541288619,
			3.750439717725742256304,
		},
		w: []float64{
			0.001374306216479552798542, 0.07709667658348313369660,
			0.6018995488855945927320, 1.145887211259885943961,
			0.6018995488855945927320, 0.07709667658348313369660,
			0.001374306216479552798542,
		},
	},
	8: {
		x: []float64{
			-4.144547186125894332060, -2.802485861287541699113,
			-1.636519042435107999225, -0.5390798113513751080725,
			0.5390798113513751080725, 1.636519042435107999225,
			2.802485861287541699113, 4.144547186125894332060,
		},
		w: []float64{
			0.0002822827860262147087116, 0.02415191518706139443530,
			0.2938768674600928165048, 0.9350030718823198255591,
			0.9350030718823198255591, 0.2938768674600928165048,
			0.02415191518706139443530, 0.0002822827860262147087116,
		},
	},
	9: {
		x: []float64{
			-4.512745863399782667567, -3.205429002856469943366,
			-2.076847978677830106522, -1.023255663789132524828,
			0.0, 1.023255663789132524828,
			2.076847978677830106522, 3.205429002856469943366,
			4.512745863399782667567,
		},
		w: []float64{
			0.00005601272441031130039594, 0.006991340497741217327016,
			0.1251218765656772805949, 0.6118617025232776891138,
			1.018566410008787505744, 0.6118617025232776891138,
			0.1251218765656772805949, 0.006991340497741217327016,
			0.00005601272441031130039594,
		},
	},
	10: {
		x: []float64{
			-4.859462828332312150155, -3.581823483551926922776,
			-2.484325841638954580876, -1.465989094391158183251,
			-0.4849357075154976530462, 0.4849357075154976530462,
			1.465989094391158183251, 2.484325841638954580876,
			3.581823483551926922776, 4.859462828332312150155,
		},
		w: []float64{
			0.00001080520376627096242755, 0.001900202038122944695857,
			0.04790562805611729357384, 0.3396072806420474547030,
			0.8638902213754462872728, 0.8638902213754462872728,
			0.3396072806420474547030, 0.04790562805611729357384,
			0.001900202038122944695857, 0.00001080520376627096242755,
		},
	},
}
