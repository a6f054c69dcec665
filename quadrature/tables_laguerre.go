package quadrature

// laguerreTable holds Gauss-Laguerre rules for weight exp(-x) on [0,+inf).
var laguerreTable = map[int]tabulated{
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
			0.5857864376269049511983, 3.414213562373095048802,
		},
		w: []float64{
			0.8535533905932737622004, 0.1464466094067262377996,
		},
	},
	3: {
		x: []float64{
			0.4157745567834790833115, 2.294280360279041719822,
			6.289945082937479196866,
		},
		w: []float64{
			0.7110930099291730154496, 0.2785177335692408488014,
			0.01038925650158613574896,
		},
	},
	4: {
		x: []float64{
			0.3225476896193923118004, 1.745761101158346575687,
			4.536620296921127983279, 9.395070912301133129234,
		},
		w: []float64{
			0.6031541043416336016360, 0.3574186924377996866415,
			0.03888790851500538427244, 0.0005392947055613274501038,
		},
	},
	5: {
		x: []float64{
			0.2635603197181409102031, 1.413403059106516792218,
			3.596425771040722081223, 7.085810005858837556922,
			12.64080084427578265943,
		},
		w: []float64{
			0.5217556105828086524759, 0.3986668110831759274541,
			0.07594244968170759538765, 0.003611758679922048454461,
			0.00002336997238577622789115,
		},
	},
	6: {
		x: []float64{
			0.2228466041792606894644, 1.188932101672623030743,
			2.992736326059314077691, 5.775143569104510501840,
			9.837467418382589917716, 15.98287398060170178255,
		},
		w: []float64{
			0.4589646739499635935683, 0.4170008307721209941134,
			0.1133733820740449757387, 0.01039919745314907489891,
			0.0002610172028149320594792, 8.985479064296212388253e-7,
		},
	},
	7: {
		x: []float64{
			0.1930436765603624138382, 1.026664895339191950345,
			2.567876744950746206908, 4.900353084526484568102,
			8.182153444562860791082, 12.73418029179781375801,
			19.39572786226254031171,
		},
		w: []float64{
			0.4093189517012739021304, 0.4218312778617197799293,
			0.1471263486575052783954, 0.02063351446871693986571,
			0.001074010143280745522132, 0.00001586546434856420126873,
			3.170315478995580562271e-8,
		},
	},
	8: {
		x: []float64{
			0.1702796323051009997889, 0.9037017767993799121860,
			2.251086629866130689307, 4.266700170287658793649,
			7.045905402393465697279, 10.75851601018099522406,
			15.74067864127800457803, 22.86313173688926410570,
		},
		w: []float64{
			0.3691885893416375299206, 0.4187867808143429560770,
			0.1757949866371718056997, 0.03334349226121565152213,
			0.002794536235225672524939, 0.00009076508773358213104239,
			8.485746716272531544868e-7, 1.048001174871510381615e-9,
		},
	},
	9: {
		x: []float64{
			0.1523222277318082474281, 0.8072200227422558477414,
			2.005135155619347122983, 3.783473973331232991675,
			6.204956777876612606974, 9.372985251687576201810,
			13.46623691109209357110, 18.83359778899169661415,
			26.37407189092737679614,
		},
		w: []float64{
			0.3361264217979625196735, 0.4112139804239843873091,
			0.1992875253708855808606, 0.04746056276565159926212,
			0.005599626610794583177004, 0.0003052497670932105663054,
			0.000006592123026075352392256, 4.110769330349548442902e-8,
			3.290874030350707576467e-11,
		},
	},
	10: {
		x: []float64{
			0.1377934705404924308308, 0.7294545495031704981604,
			1.808342901740316048233, 3.401433697854899514483,
			5.552496140063803632418, 8.330152746764496700239,
			11.84378583790006556492, 16.27925783137810209953,
			21.99658581198076195128, 29.92069701227389155991,
		},
		w: []float64{
			0.3084411157650201415475, 0.4011199291552735515158,
			0.2180682876118094215886, 0.06208745609867774739290,
			0.009501516975181100553839, 0.0007530083885875387754560,
			0.00002825923349599565567423, 4.249313984962686372587e-7,
			1.839564823979630780922e-9, 9.911827219609008558378e-13,
		},
	},
	11: {
		x: []float64{
			0.1257964421879675226758, 0.6654182558392278416781,
			1.647150545872169309587, 3.091138143035254953302,
			5.029284401579833212370, 7.509887863806616819411,
			10.60595099954696778056, 14.43161375806418553532,
			19.17885740321467864782, 25.21770933967756110409,
			33.49719284717553727319,
		},
		w: []float64{
			0.2849332128942006050561, 0.3897208895278493779376,
			0.2327818318489913339402, 0.07656445354619668640085,
			0.01439328276735069509186, 0.001518880846484873069848,
			0.00008513122435471922597204, 0.000002292403879574504078577,
			2.486353702767795873734e-8, 7.712626933691320470282e-11,
			2.883775868323623861598e-14,
		},
	},
	12: {
		x: []float64{
			0.1157221173580206752672, 0.6117574845151306653916,
			1.512610269776418786782, 2.833751337743507228627,
			4.599227639418348484606, 6.844525453115177347754,
			9.621316842456867043912, 13.00605499330634772035,
			17.11685518746225572818, 22.15109037939700566992,
			28.48796725098400031257, 37.09912104446692033664,
		},
		w: []float64{
			0.2647313710554431903497, 0.3777592758731379820245,
			0.2440820113198775642549, 0.09044922221168093072751,
			0.02010238115463409652266, 0.002663973541865315881054,
			0.0002032315926629993921214, 0.000008365055856819798745336,
			1.668493876540910261170e-7, 1.342391030515004145524e-9,
			3.061601635035020781424e-12, 8.148077467426241682473e-16,
		},
	},
	13: {
		x: []float64{
			0.1071423884722523106485, 0.5661318990404018534060,
			1.398564336451019717928, 2.616597108406411298084,
			4.238845929017033279373, 6.292256271140073780394,
			8.815001941186978047333, 11.86140358881124257622,
			15.51076203770375278185, 19.88463566388022833320,
			25.18526386467775808430, 31.80038630194726837137,
			40.72300866926557956590,
		},
		w: []float64{
			0.2471887084299626213462, 0.3656888229005219453067,
			0.2525624200576585023568, 0.1034707580241837051142,
			0.02643275441556161577816, 0.004220396040254752765552,
			0.0004118817704727347748925, 0.00002351547398155323868829,
			7.317311620249099104010e-7, 1.108841625703980679792e-8,
			6.770826692205898840646e-11, 1.159979959905076060945e-13,
			2.245093203892758415992e-17,
		},
	},
	14: {
		x: []float64{
			0.09974750703259757457368, 0.5268576488519028964046,
			1.300629121251496481708, 2.430801078730844636170,
			3.932102822293218882131, 5.825536218301708419339,
			8.140240141565145030060, 10.91649950736601884081,
			14.21080501116128868311, 18.10489222021809841255,
			22.72338162826962482323, 28.27298172324820569542,
			35.14944366059242658286, 44.36608171111742304163,
		},
		w: []float64{
			0.2318155771448649778408, 0.3537846915975431518023,
			0.2587346102454280859873, 0.1154828935569232100873,
			0.03319209215933736003875, 0.006192869437006610216788,
			0.0007398903778673859424259, 0.00005490719466841698378573,
			0.000002409585764085377496758, 5.801543981676495180886e-8,
			6.819314692484974119616e-10, 3.221207751894847939809e-12,
			4.221352440516587351598e-15, 6.052375022289188808399e-19,
		},
	},
	15: {
		x: []float64{
			0.09330781201728180476290, 0.4926917403018839089601,
			1.215595412070949463730, 2.269949526203743202474,
			3.667622721751437277249, 5.425336627413553165344,
			7.565916226613067860497, 10.12022856801911273479,
			13.13028248217572356410, 16.65440770832995782252,
			20.77647889944876677292, 25.62389422672878014459,
			31.40751916975393851524, 38.53068330648600941625,
			48.02608557268579434657,
		},
		w: []float64{
			0.2182348859400868898564, 0.3422101779228833296389,
			0.2630275779416800974148, 0.1264258181059305358430,
			0.04020686492100091484159, 0.008563877803611838363916,
			0.001212436147214252076219, 0.0001116743923442519419926,
			0.000006459926762022900924653, 2.226316907096272630332e-7,
			4.227430384979365007351e-9, 3.921897267041089290385e-11,
			1.456515264073126406333e-13, 1.483027051113301335462e-16,
			1.600594906211133231050e-20,
		},
	},
	16: {
		x: []float64{
			0.08764941047892784036020, 0.4626963289150808318808,
			1.141057774831226856878, 2.129283645098380616326,
			3.437086633893206645235, 5.078018614549767912923,
			7.070338535048234130396, 9.438314336391938783947,
			12.21422336886615873694, 15.44152736878161707676,
			19.18015685675313485466, 23.51590569399190853182,
			28.57872974288214036752, 34.58339870228662581453,
			41.94045264768833263547, 51.70116033954331836434,
		},
		w: []float64{
			0.2061517149578009943343, 0.3310578549508841659930,
			0.2657957776442141525995, 0.1362969342963775399755,
			0.04732892869412521897806, 0.01129990008033945323125,
			0.001849070943526310864292, 0.0002042719153082784601260,
			0.00001484458687398129877135, 6.828319330871199564396e-7,
			1.881024841079673213882e-8, 2.862350242973881619631e-10,
			2.127079033224102967390e-12, 6.297967002517867787174e-15,
			5.050473700035512820402e-18, 4.161462370372855190426e-22,
		},
	},
	17: {
		x: []float64{
			0.08263821470894766905440, 0.4361503235587104363760,
			1.075176577511428577330, 2.005193531649232240703,
			3.234256124047443761574, 4.773513513700197264809,
			6.637829205364952665416, 8.846685511169800053695,
			11.42552931937335258697, 14.40782303748131800220,
			17.83828473070114092907, 21.77826825772226532617,
			26.31531781124879977661, 31.58177168045673313439,
			37.79609383747710072861, 45.37571653398896618293,
			55.38975178983961066409,
		},
		w: []float64{
			0.1953322052517708321459, 0.3203753572745402813366,
			0.2673297263571710972388, 0.1451298543587586254074,
			0.05443694324533845777938, 0.01435729776606186729178,
			0.002662824735572772568432, 0.0003436797271562999206118,
			0.00003027551783782870109437, 0.000001768515053231676895381,
			6.576272886810433321992e-8, 1.469730932159546790344e-9,
			1.816910362555449795555e-11, 1.095401388928687402976e-13,
			2.617373882223370421551e-16, 1.672935693146154690850e-19,
			1.065626316274042788153e-23,
		},
	},
	18: {
		x: []float64{
			0.07816916666970547129867, 0.4124900852591292910391,
			1.016520179623539689191, 1.894888509969760914267,
			3.054353113202659751152, 4.504205538889892826338,
			6.256725073949111452742, 8.327825156605630021705,
			10.73799004775760933522, 13.51365620755508981909,
			16.68930628193010593782, 20.31076762626774285613,
			24.44068135928370276564, 29.16820866257961613130,
			34.62792706566017214540, 41.04181677280875813929,
			48.83392271608652274866, 59.09054643590125070372,
		},
		w: []float64{
			0.1855886031469188056233, 0.3101817663702252936496,
			0.2678665671485363548209, 0.1529797474680749065538,
			0.06143491786096165270768, 0.01768721308077293127726,
			0.003660179767759917798027, 0.0005406227870077353231284,
			0.00005616965051214231138179, 0.000004015307883701157558589,
			1.914669856675674979692e-7, 5.836095268631594129181e-9,
			1.071711266955390127729e-10, 1.089098713888833855620e-12,
			5.386664748378308876081e-15, 1.049865978035703408779e-17,
			5.405398451631053643566e-21, 2.691653269201028627084e-25,
		},
	},
	19: {
		x: []float64{
			0.07415878375720508771314, 0.3912686133199946073376,
			0.9639573439979580586249, 1.796175582068328125577,
			2.893651381873783991165, 4.264215539627766474360,
			5.918141561644048558154, 7.868618915334733731057,
			10.13242371681526592516, 12.73088146384239800451,
			15.69127833983588854541, 19.04899320982355015321,
			22.85084976082948293239, 27.16066932741144887900,
			32.06912225186224232244, 37.71290580121964947706,
			44.31736279583149611961, 52.31290245740438316586,
			62.80242315350037584135,
		},
		w: []float64{
			0.1767684749159125022510, 0.3004781436072543794822,
			0.2675995470381750307727, 0.1599133721355802167855,
			0.06824937997614911345524, 0.02123930760654432492441,
			0.004841627351148395967250, 0.0008049127473813667665946,
			0.00009652472093153501708432, 0.000008207305258051030544090,
			4.830566724730772539448e-7, 1.904991361123285699936e-8,
			4.816684630928061557669e-10, 7.348258839551144376844e-12,
			6.202275387572616398937e-14, 2.541430843015422723719e-16,
			4.078861296825712350072e-19, 1.707750187593837061004e-22,
			6.715064649908189959990e-27,
		},
	},
	20: {
		x: []float64{
			0.07053988969198875336669, 0.3721268180016114437942,
			0.9165821024832735646677, 1.707306531028343880688,
			2.749199255309432129645, 4.048925313850886922375,
			5.615174970861616514105, 7.459017453671063309769,
			9.594392869581096772474, 12.03880254696431630962,
			14.81429344263073997851, 17.94889552051937601737,
			21.47878824028501097574, 25.45170279318690550352,
			29.93255463170061200671, 35.01343424047900000628,
			40.83305705672857106203, 47.61999404734650213994,
			55.81079575006389889075, 66.52441652561575381864,
		},
		w: []float64{
			0.1687468018511138621492, 0.2912543620060682817168,
			0.2666861028670012885495, 0.1660024532695068400315,
			0.07482606466879237054006, 0.02496441730928322107282,
			0.006202550844572236847448, 0.001144962386476908242040,
			0.0001557417730278119747798, 0.00001540144086522491568938,
			0.000001086486366517982351480, 5.330120909556714750928e-8,
			1.757981179050582003578e-9, 3.725502402512320872629e-11,
			4.767529251578190524495e-13, 3.372844243362438412365e-15,
			1.155014339500398830964e-17, 1.539522140582343553464e-20,
			5.286442725569157828803e-24, 1.656456612499023295908e-28,
		},
	},
	31: {
		x: []float64{
			0.04590194762110829074350, 0.2419801638247720489041,
			0.5952538942223507370733, 1.106689499532998716211,
			1.777595692874772721159, 2.609703415256680650389,
			3.605196802340044269881, 4.766747084471761131363,
			6.097554567181740926993, 7.601400949233137422936,
			9.282714313470889418254, 11.14664975561929135899,
			13.19918957624499852246, 15.44726831554931007581,
			17.89892982664475764673, 20.56352633671582217074,
			23.45197348201185859105, 26.57708135211826045998,
			29.95399087234644550695, 33.60075953290220273541,
			37.53916440733044088289, 41.79583087018221998135,
			46.40386680641112313603, 51.40531447679775516186,
			56.85499286871584362051, 62.82685590878632145368,
			69.42527719108034562332, 76.80704776386273283761,
			85.23035860754566916939, 95.18893989152562998131,
			107.9522438275787147500,
		},
		w: []float64{
			0.1125278955037258382085, 0.2155276081808912379522,
			0.2383082516456965473191, 0.1953883092979022924992,
			0.1269828328930619014364, 0.06718616892389930067093,
			0.02930322499387948740489, 0.01059756991529573608953,
			0.003185127258238698032097, 0.0007954954830794038292209,
			0.0001648005212663668731786, 0.00002822923786431081639386,
			0.000003980290255100858038712, 4.593183984180106167373e-7,
			4.307554518773110093013e-8, 3.255124993827157085518e-9,
			1.962024667541059499625e-10, 9.319049908661758712953e-12,
			3.437754181941162052031e-13, 9.679524713044671699741e-15,
			2.036806611011524739801e-16, 3.121268728071352683177e-18,
			3.372958170416105245340e-20, 2.467279638661669601104e-22,
			1.158220190452564363483e-24, 3.247292259142542243480e-27,
			4.914301730805743274082e-30, 3.450007110480839413222e-33,
			8.766371011716204147293e-37, 5.036364392116149041130e-41,
			1.990998458253145648244e-46,
		},
	},
	32: {
		x: []float64{
			0.04448936583326701841885, 0.2345261095196185374529,
			0.5768846293018864264916, 1.072448753817817633041,
			1.722408776444645441131, 2.528336706425794881124,
			3.492213273021994489609, 4.616456769749767387762,
			5.903958504174243946562, 7.358126733186241113222,
			8.982940924212596103378, 10.78301863253997206750,
			12.76369798674272511497, 14.93113975552255731980,
			17.29245433671531478924, 19.85586094033605473979,
			22.63088901319677448868, 25.62863602245924776748,
			28.86210181632347474434, 32.34662915396473700323,
			36.10049480575197380402, 40.14571977153944153621,
			44.50920799575493797591, 49.22439498730863917672,
			54.33372133339690733287, 59.89250916213401819613,
			65.97537728793505279656, 72.68762809066270863868,
			80.18744697791352306749, 88.73534041789239868936,
			98.82954286828397255918, 111.7513980979376952137,
		},
		w: []float64{
			0.1092183419523849711361, 0.2104431079388132329361,
			0.2352132296698480053949, 0.1959033359728810434132,
			0.1299837862860717606072, 0.07057862386571744156016,
			0.03176091250917507030583, 0.01191821483483855705654,
			0.003738816294611524789661, 0.0009808033066149551322306,
			0.0002148649188013641880232, 0.00003920341967987947204327,
			0.000005934541612868632878356, 7.416404578667552219071e-7,
			7.604567879120781481119e-8, 6.350602226625806742428e-9,
			4.281382971040928878814e-10, 2.305899491891336079273e-11,
			9.799379288727094063335e-13, 3.237801657729266462310e-14,
			8.171823443420719433202e-16, 1.542133833393823372179e-17,
			2.119792290163618612041e-19, 2.054429673788045426656e-21,
			1.346982586637395155805e-23, 5.661294130397359371126e-26,
			1.418560545463036905951e-28, 1.913375494454224309371e-31,
			1.192248760098222356542e-34, 2.671511219240136985999e-38,
			1.338616942106256282719e-42, 4.510536193898974232223e-48,
		},
	},
	63: {
		x: []float64{
			0.02276889373257615378599, 0.1199832524272782471577,
			0.2949418544477014957743, 0.5477908789623772536387,
			0.8786906117993190167390, 1.287846433591970630231,
			1.775512381538855376398, 2.341992556708598925606,
			2.987642322324647393998, 3.712869599201800034630,
			4.518136334950358439111, 5.403960178182594628690,
			6.370916378786533022039, 7.419639933931171115489,
			8.550828000840332831259, 9.765242599924536680700,
			11.06371363514066173622, 12.44714226235649274980,
			13.91650464105781856291, 15.47285611003629642478,
			17.11733583386358875312, 18.85117197415485685087,
			20.67568744805651566038, 22.59230634631152838129,
			24.60256109497263888370, 26.70810045873734396978,
			28.91069850045138264018, 31.21226463117591288548,
			33.61485490910115483660, 36.12068477448482305631,
			38.73214344293358214563, 41.45181022231874119111,
			44.28247307147923383936, 47.22714978429568689894,
			50.28911226424069576175, 53.47191445678865280835,
			56.77942463634206221310, 60.21586290901986288642,
			63.78584500423597463170, 67.49443370229388583037,
			71.34719960429526628665, 75.35029342565323425429,
			79.51053262998630914956, 83.83550608087225784334,
			88.33370157035436908611, 93.01466272855854740530,
			97.88918414757814004339, 102.9695569074138165078,
			108.2698816196159539223, 113.8064735028746273893,
			119.5983953883045866696, 125.6681725585611943129,
			132.0427727209116574659, 138.7549841810378907817,
			145.8454131831354035828, 153.3654845949786362371,
			161.3821519481376124356, 169.9857060066583943880,
			179.3036624740158091025, 189.5278959653247547367,
			200.9752115992465674163, 214.2536853663878864270,
			230.9346574708970397125,
		},
		w: []float64{
			0.05711863321386897981159, 0.1206747609064039528332,
			0.1592500109658187372387, 0.1687517832756079923460,
			0.1536664197766895669619, 0.1236877061471648164109,
			0.08927509885484867154528, 0.05825848544610594495757,
			0.03454665754599258087472, 0.01867568598571465679829,
			0.009223344904409353652849, 0.004167125068483959276258,
			0.001723812029990058271539, 0.0006532084502971631116934,
			0.0002267764467090958695241, 0.00007212767415481066841075,
			0.00002101126118046648459881, 0.000005603550089335721274918,
			0.000001367364278560488801784, 3.050726393019581724074e-7,
			6.218006183930976355998e-8, 1.156652955193171126002e-8,
			1.961458826756547808153e-9, 3.028617119570941124433e-10,
			4.252134453940068676901e-11, 5.420222057807381933470e-12,
			6.262730683859767255417e-13, 6.547444315657332299231e-14,
			6.181557580872918184630e-15, 5.259272136350738140426e-16,
			4.023092009264648401539e-17, 2.760074051181953650501e-18,
			1.693694675696829605332e-19, 9.268914687217708731496e-21,
			4.509373906036563293978e-22, 1.943516287613237657363e-23,
			7.392627089516920703800e-25, 2.471436415443463261598e-26,
			7.228864944674159765515e-28, 1.840761729261403936299e-29,
			4.058349856684196010576e-31, 7.700049641643836811446e-33,
			1.248850576499933432884e-34, 1.718500022676701069766e-36,
			1.989637263667239693801e-38, 1.919967137880405826771e-40,
			1.527858828552216692046e-42, 9.905475268884214295585e-45,
			5.159752367302921188423e-47, 2.124984666408411124569e-49,
			6.790385276685291059117e-52, 1.646665414829617746791e-54,
			2.950906540269105502705e-57, 3.783842064757105198488e-60,
			3.335813006854243187817e-63, 1.922346102227388098136e-66,
			6.781269696108301687278e-70, 1.340475280244060460762e-73,
			1.310974510180502975765e-77, 5.262486388140178738869e-82,
			6.378001385658741425776e-87, 1.299707894237292456635e-92,
			1.000851149696875406344e-99,
		},
	},
	64: {
		x: []float64{
			0.02241587414670528002281, 0.1181225120967704797975,
			0.2903657440180364839991, 0.5392862212279790393181,
			0.8650370046481139446200, 1.267814040775241398116,
			1.747859626059436252830, 2.305463739307508718548,
			2.940965156725251840679, 3.654752650207290527035,
			4.447266343313094356743, 5.318999254496390343522,
			6.270499046923653912911, 7.302370002587395747223,
			8.415275239483024194495, 9.609939192796108035763,
			10.88715038388637214259, 12.24776450424430161816,
			13.69270784554750515273, 15.22298111152472884801,
			16.83966365264873721053, 18.54391817085919052362,
			20.33699594873023550115, 22.22024266595087653992,
			24.19510487593325398989, 26.26313722711848578513,
			28.42601052750102729950, 30.68552076752597177105,
			33.04359923643782912552, 35.50232389114120958698,
			38.06393216564646826036, 40.73083544445862636573,
			43.50563546642152985270, 46.39114297861619207361,
			49.39039902562468667924, 52.50669934134630165018,
			55.74362241327838046334, 59.10506191901710660885,
			62.59526440015139559606, 66.21887325124756438221,
			69.98098037714682922853, 73.88718723248296321096,
			77.94367743446312031369, 82.15730377831930429520,
			86.53569334945651821022, 91.08737561313309014564,
			95.82194001552073209477, 100.7502319695139796293,
			105.8845994687999493564, 111.2392075244395820635,
			116.8304450513064984634, 122.6774602685385765774,
			128.8028787692376725128, 135.2337879495258278340,
			142.0031214899315190251, 149.1516659000493885873,
			156.7310751326711612336, 164.8086026551505229932,
			173.4749468364242745222, 182.8582046914314636463,
			193.1511360370729114794, 204.6720284850594559491,
			218.0318519353285163325, 234.8095791713261647131,
		},
		w: []float64{
			0.05625284233902984574102, 0.1190239873124260278149,
			0.1574964038621445238202, 0.1675470504157739478809,
			0.1533528557792366180855, 0.1242210536093297445126,
			0.09034230098648505773897, 0.05947775576835502421225,
			0.03562751890403607185417, 0.01948041043116640604334,
			0.009743594899382002240108, 0.004464310364166275292365,
			0.001875359581323114826750, 0.0007226469815750051227191,
			0.0002554875328334967097144, 0.00008287143534396942179063,
			0.00002465686396788558745973, 0.000006726713878829668527613,
			0.000001681785369964088897821, 3.850812981546684414828e-7,
			8.068728040990499790415e-8, 1.545723706757688828004e-8,
			2.704480147617481409989e-9, 4.316775475427200912314e-10,
			6.277752541761452201653e-11, 8.306317376288958063879e-12,
			9.984031787220164055897e-13, 1.088353887116662685326e-13,
			1.074017403441590186483e-14, 9.575737231574442105585e-16,
			7.697028023648586098863e-17, 5.564881137454025366525e-18,
			3.609756409010446498299e-19, 2.095095369548946234768e-20,
			1.084793301097549361203e-21, 4.994699486363804115792e-23,
			2.037836974598822310658e-24, 7.339537564278837039106e-26,
			2.323783082198694261305e-27, 6.438234706908762420384e-29,
			1.553121095788275270622e-30, 3.244250092019537314466e-32,
			5.832386267836201501282e-34, 8.963254833102854061314e-36,
			1.168703989550736241199e-37, 1.282055984359980381498e-39,
			1.172094937405002291828e-41, 8.835339672328604981297e-44,
			5.424955590306186594338e-46, 2.675542666678893828950e-48,
			1.042917031411367078111e-50, 3.152902351957772623653e-53,
			7.229541910647522339707e-56, 1.224235301230082264460e-58,
			1.482168504901910411781e-61, 1.232519348814518808064e-64,
			6.691499004571269526814e-68, 2.220465941850448995507e-71,
			4.120946094738876249979e-75, 3.774399061896489170418e-79,
			1.414115052917619417463e-83, 1.591833064041367917861e-88,
			2.989484348860634307741e-94, 2.089063508436952770828e-101,
		},
	},
	65: {
		x: []float64{
			0.02207363438825008752646, 0.1163186122133761517296,
			0.2859295130708139518346, 0.5310417757844884389117,
			0.8518016708090465866553, 1.248396282018317077272,
			1.721056879817557348166, 2.270060184916902561098,
			2.895729407567994711922, 3.598435357564785406948,
			4.378597697441184648045, 5.236686366943200503198,
			6.173223196587306319214, 7.188783726294672021319,
			8.283999245888718314676, 9.459559076100654480761,
			10.71621311118970483939, 12.05477464723227071506,
			13.47612352356711540561, 14.98120960885415207538,
			16.57105666779644915780, 18.24676664989876721190,
			20.00952444782870607311, 21.86060318017741659144,
			23.80137006189332856359, 25.83329293563972209627,
			27.95794754912040738790, 30.17702567741825827957,
			32.49234420608634200034, 34.90585531073198418227,
			37.41965789291073154898, 40.03601046127700883897,
			42.75734568236861489158, 45.58628686873581778111,
			48.52566672543674370212, 51.57854874191301401042,
			54.74825169848637565672, 58.03837785988673545849,
			61.45284555862932735804, 64.99592703719963692149,
			68.67229263146261839779, 72.48706265445272591576,
			76.44586870198476724398, 80.55492658078427193903,
			84.82112370105248404458, 89.25212464387790938670,
			93.85649980606052447529, 98.64388368540081986275,
			103.6251717196485483397, 108.8127679778088314038,
			114.2209009759026157291, 119.8660323565366571096,
			125.7673946612363165229, 131.9477125994420957875,
			138.4341918904730057527, 145.2599099915272921472,
			152.4658317578310861618, 160.1038378507558279437,
			168.2414786260553315506, 176.9698559798566249541,
			186.4176424833510899547, 196.7784744408769492596,
			208.3721073809404910954, 221.8123765763209455625,
			238.6858115946742701024,
		},
		w: []float64{
			0.05541290115655364695552, 0.1174173965641620143868,
			0.1557779315952736352675, 0.1663479558840318118737,
			0.1530132070654468875123, 0.1247106153673732971244,
			0.09136714862684748045794, 0.06066936735323222249747,
			0.03669850783377568996086, 0.02028843589232292331588,
			0.01027320226876997838946, 0.004771287810811106261069,
			0.002034370219657444748851, 0.0007967421670878927351181,
			0.0002866838120975627284361, 0.00009477438367795844232507,
			0.00002878087763864911225229, 0.000008025921887785674361327,
			0.000002054253421021052108063, 4.822974163227069271800e-7,
			1.037906330975825689485e-7, 2.045564582524379042491e-8,
			3.688583482933432520925e-9, 6.078931500200968395312e-10,
			9.145249815740577448115e-11, 1.254274143808846162092e-11,
			1.566002127846993379224e-12, 1.777107419119350737919e-13,
			1.829851898040443279934e-14, 1.706459295470497927030e-15,
			1.438412537484673440005e-16, 1.093544041727890176736e-17,
			7.480562756582799850682e-19, 4.592749004600184491949e-20,
			2.523797616121073297222e-21, 1.237603027662237081108e-22,
			5.398129612170324038461e-24, 2.086925656272980913613e-25,
			7.123636012169123514097e-27, 2.137979494953525074652e-28,
			5.615859966566918366750e-30, 1.284545534784396302194e-31,
			2.544441068024689504997e-33, 4.337930175302045256708e-35,
			6.322207248507368420699e-37, 7.817460700171623304727e-39,
			8.132038237878147771448e-41, 7.049191633943024538857e-43,
			5.037492898784608764175e-45, 2.931620352529990084539e-47,
			1.370002490040754814264e-49, 5.058278021543562361900e-52,
			1.447822639997111426884e-54, 3.141466864703300069022e-57,
			5.030562949050866690252e-60, 5.754790189221424407621e-63,
			4.517292432569605137459e-66, 2.312244688899729995559e-69,
			7.223110718343357700124e-73, 1.259548302244138049563e-76,
			1.081236225935377799613e-80, 3.783970041441071627567e-85,
			3.959556337402469028487e-90, 6.859291059478698100861e-96,
			4.354367872116735851771e-103,
		},
	},
}
