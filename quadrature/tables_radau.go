package quadrature

// radauTable holds Gauss-Radau rules on [-1,1] with the node fixed at -1.
var radauTable = map[int]tabulated{
	1: {
		x: []float64{
			-1.0,
		},
		w: []float64{
			2.0,
		},
	},
	2: {
		x: []float64{
			-1.0, 0.3333333333333333333333,
		},
		w: []float64{
			0.5, 1.500000000000000000000,
		},
	},
	3: {
		x: []float64{
			-1.0, -0.2898979485566356196395,
			0.6898979485566356196395,
		},
		w: []float64{
			0.2222222222222222222222, 1.024971652376843227678,
			0.7528061254009345501002,
		},
	},
	4: {
		x: []float64{
			-1.0, -0.5753189235216941120505,
			0.1810662711185305782701, 0.8228240809745921052089,
		},
		w: []float64{
			0.125, 0.6576886399601194878886,
			0.7763869376863437615605, 0.4409244223535367505510,
		},
	},
	5: {
		x: []float64{
			-1.0, -0.7204802713124388956958,
			-0.1671808647378336401134, 0.4463139727237523446399,
			0.8857916077709646356138,
		},
		w: []float64{
			0.08, 0.4462078021671414888051,
			0.6236530459514825081637, 0.5627120302989241203843,
			0.2874271215824518826468,
		},
	},
	6: {
		x: []float64{
			-1.0, -0.8029298284023471477530,
			-0.3909285467072721890292, 0.1240503795052277119900,
			0.6039731642527836549284, 0.9203802858970625153184,
		},
		w: []float64{
			0.05555555555555555555556, 0.3196407532205109665458,
			0.4853871884689699161598, 0.5209267831895749825702,
			0.4169013343119077389594, 0.2015883852534808402092,
		},
	},
	7: {
		x: []float64{
			-1.0, -0.8538913426394822297037,
			-0.5384677240601090018338, -0.1173430375431002641628,
			0.3260306194376914018059, 0.7038428006630314163000,
			0.9413671456804302160559,
		},
		w: []float64{
			0.04081632653061224489796, 0.2392274892253124057871,
			0.3809498736442311538059, 0.4471098290145664694993,
			0.4247037790059556083983, 0.3182042314673014817449,
			0.1489884711120206358665,
		},
	},
	8: {
		x: []float64{
			-1.0, -0.8874748789261557070687,
			-0.6395186165262152700248, -0.2947505657736607252522,
			0.09430725266111076600290, 0.4684203544308210630464,
			0.7706418936781915361807, 0.9550412271225750037823,
		},
		w: []float64{
			0.03125, 0.1853581548029792785407,
			0.3041306206467851289757, 0.3765175453891185565721,
			0.3915721674524935930825, 0.3470147956345012802287,
			0.2496479013298649632579, 0.1145088147442571993424,
		},
	},
	9: {
		x: []float64{
			-1.0, -0.9107320894200602985338,
			-0.7112674859157088570296, -0.4263504857111389621026,
			-0.09037336960685329806454, 0.2561356708334553951383,
			0.5713830412087384832849, 0.8173527842004120879925,
			0.9644401697052730963736,
		},
		w: []float64{
			0.02469135802469135802469, 0.1476540190463153858196,
			0.2471893782045930523612, 0.3168437756704379783380,
			0.3482730027729665940720, 0.3376939669759295858037,
			0.2863866963572311711467, 0.2005532980245519574212,
			0.09071450492328291701289,
		},
	},
	10: {
		x: []float64{
			-1.0, -0.9274843742335810781177,
			-0.7638420424200025996154, -0.5256460303700792293654,
			-0.2362344693905880492785, 0.07605919783797813023371,
			0.3806648401447243658808, 0.6477666876740094362736,
			0.8512252205816079107282, 0.9711751807022469027343,
		},
		w: []float64{
			0.02, 0.1202966705574816315173,
			0.2042701318790006755558, 0.2681948378411786960586,
			0.3058592877244226210163, 0.3135824572269383766959,
			0.2906101648329183111469, 0.2391934317143797133766,
			0.1643760127369214757017, 0.07361700548675849893105,
		},
	},
	11: {
		x: []float64{
			-1.0, -0.9399419356770270059139,
			-0.8034219755802935406976, -0.6019578420737976902759,
			-0.3518889233533302147143, -0.07347753143132126574619,
			0.2107203062284263140761, 0.4776806479830875194679,
			0.7057771007138595191448, 0.8765358562457037489547,
			0.9761647731351688061805,
		},
		w: []float64{
			0.01652892561983471074380, 0.09984608190796806389575,
			0.1713176192066598364867, 0.2288661238489766244017,
			0.2678670861896841778066, 0.2851655639410073374600,
			0.2793613331033830451890, 0.2509253776971283946491,
			0.2021631085400244183499, 0.1370336821332022563102,
			0.06092509781213113470722,
		},
	},
	12: {
		x: []float64{
			-1.0, -0.9494527592049593004933,
			-0.8339167731051897065863, -0.6616497992456371480611,
			-0.4444065697819358511266, -0.1969945595342783664554,
			0.06372477382083191583378, 0.3199836841706696235328,
			0.5543187859123242889843, 0.7507615497111138525294,
			0.8959290977456388948329, 0.9799634390766391883140,
		},
		w: []float64{
			0.01388888888888888888889, 0.08417213493868097624158,
			0.1455636688539951285225, 0.1969985348260896346560,
			0.2350031151449858393486, 0.2569913381527077761280,
			0.2614656605521331034381, 0.2481215608040099594031,
			0.2178688790261924388487, 0.1727706393133085643061,
			0.1159074802917383927503, 0.05124809920726929746802,
		},
	},
	13: {
		x: []float64{
			-1.0, -0.9568758736682992781838,
			-0.8578842025288220356976, -0.7091050875298717615804,
			-0.5191977790504541074852, -0.2992013005545099855326,
			-0.06190169862563534125786, 0.1789098375970846350219,
			0.4092382314748395567542, 0.6156978909402919180179,
			0.7862910182330466847318, 0.9111070736891845539491,
			0.9829218900231451612627,
		},
		w: []float64{
			0.01183431952662721893491, 0.07190241629249552893975,
			0.1251038343311523581338, 0.1710034604706166424638,
			0.2069606114558770746311, 0.2308888628869954340122,
			0.2413983422876911486309, 0.2378785476607120313427,
			0.2205342292884514646911, 0.1903737155596317322548,
			0.1491509500900002051515, 0.09926780688184708598474,
			0.04370290326790207482885,
		},
	},
	14: {
		x: []float64{
			-1.0, -0.9627792699780242971206,
			-0.8770489182014620247953, -0.7473896426133788387354,
			-0.5803140565468749711057, -0.3842020034392033137941,
			-0.1688879280426809110084, 0.05483122799176454964981,
			0.2757372054355223991826, 0.4827529185884749668204,
			0.6654979772168845370090, 0.8148095506019947294342,
			0.9232037225206432992463, 0.9852706979478213566986,
		},
		w: []float64{
			0.01020408163265306122449, 0.06212201690777146016613,
			0.1086077227443628268267, 0.1496205393531213559505,
			0.1831270021257296541239, 0.2074497633351756726681,
			0.2213698114995709489317, 0.2241893480027077942384,
			0.2157671006046188513812, 0.1965255184529824303246,
			0.1674297278910862789901, 0.1299396687373423478074,
			0.08594053544298040308931, 0.03770716326989691427746,
		},
	},
	15: {
		x: []float64{
			-1.0, -0.9675504681972004765625,
			-0.8926054001205507670668, -0.7786856176390310793817,
			-0.6307794788869492839461, -0.4553529057785293708721,
			-0.2600733767408079157690, -0.05347572267974606410745,
			0.1554106853848594843192, 0.3574565120221276511953,
			0.5438314587014840169307, 0.7063902646375725401527,
			0.8380290006360896312151, 0.9329971909359737199281,
			0.9871664784143630863784,
		},
		w: []float64{
			0.008888888888888888888889, 0.05420278004864449433821,
			0.09512959946048089920385, 0.1318754625049516321863,
			0.1628544773038326294487, 0.1867151458394509080838,
			0.2024151870306184298727, 0.2092686081476945814309,
			0.2069759602495537554790, 0.1956375030451161164736,
			0.1757488726424476856703, 0.1481795270034672539247,
			0.1141352034897527530131, 0.07510839276050643973297,
			0.03286439158459353225304,
		},
	},
}
