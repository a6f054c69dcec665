package quadrature

// clenshawCurtisTable holds Clenshaw-Curtis rules on [-1,1].
var clenshawCurtisTable = map[int]tabulated{
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
			-1.0, 1.0,
		},
		w: []float64{
			1.0, 1.0,
		},
	},
	3: {
		x: []float64{
			-1.0, 0.0,
			1.0,
		},
		w: []float64{
			0.3333333333333333333333, 1.333333333333333333333,
			0.3333333333333333333333,
		},
	},
	4: {
		x: []float64{
			-1.0, -0.5000000000000000000000,
			0.5000000000000000000000, 1.0,
		},
		w: []float64{
			0.1111111111111111111111, 0.8888888888888888888889,
			0.8888888888888888888889, 0.1111111111111111111111,
		},
	},
	5: {
		x: []float64{
			-1.0, -0.7071067811865475244008,
			0.0, 0.7071067811865475244008,
			1.0,
		},
		w: []float64{
			0.06666666666666666666667, 0.5333333333333333333333,
			0.8000000000000000000000, 0.5333333333333333333333,
			0.06666666666666666666667,
		},
	},
	6: {
		x: []float64{
			-1.0, -0.8090169943749474241023,
			-0.3090169943749474241023, 0.3090169943749474241023,
			0.8090169943749474241023, 1.0,
		},
		w: []float64{
			0.04000000000000000000000, 0.3607430412000112161915,
			0.5992569587999887838085, 0.5992569587999887838085,
			0.3607430412000112161915, 0.04000000000000000000000,
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
			0.02857142857142857142857, 0.2539682539682539682540,
			0.4571428571428571428571, 0.5206349206349206349206,
			0.4571428571428571428571, 0.2539682539682539682540,
			0.02857142857142857142857,
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
			0.02040816326530612244898, 0.1901410072182083517842,
			0.3522424237181591153316, 0.4372084057983264104351,
			0.4372084057983264104351, 0.3522424237181591153316,
			0.1901410072182083517842, 0.02040816326530612244898,
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
			0.01587301587301587301587, 0.1462186492160181550119,
			0.2793650793650793650794, 0.3617178587204897814960,
			0.3936507936507936507937, 0.3617178587204897814960,
			0.2793650793650793650794, 0.1462186492160181550119,
			0.01587301587301587301587,
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
			0.01234567901234567901235, 0.1165674565720371229603,
			0.2252843233381044081266, 0.3019400352733686067019,
			0.3438625058041441831988, 0.3438625058041441831988,
			0.3019400352733686067019, 0.2252843233381044081266,
			0.1165674565720371229603, 0.01234567901234567901235,
		},
	},
	11: {
		x: []float64{
			-1.0, -0.9510565162951535721164,
			-0.8090169943749474241023, -0.5877852522924731291687,
			-0.3090169943749474241023, 0.0,
			0.3090169943749474241023, 0.5877852522924731291687,
			0.8090169943749474241023, 0.9510565162951535721164,
			1.0,
		},
		w: []float64{
			0.01010101010101010101010, 0.09457905488370156115509,
			0.1856352144242477652860, 0.2535883332836866062331,
			0.2992132704242370831988, 0.3137662337662337662338,
			0.2992132704242370831988, 0.2535883332836866062331,
			0.1856352144242477652860, 0.09457905488370156115509,
			0.01010101010101010101010,
		},
	},
	12: {
		x: []float64{
			-1.0, -0.9594929736144973898904,
			-0.8412535328311811688618, -0.6548607339452850640569,
			-0.4154150130018864255293, -0.1423148382732851404438,
			0.1423148382732851404438, 0.4154150130018864255293,
			0.6548607339452850640569, 0.8412535328311811688618,
			0.9594929736144973898904, 1.0,
		},
		w: []float64{
			0.008264462809917355371901, 0.07856015374620000542994,
			0.1550404550825613655227, 0.2155625460008685809896,
			0.2599173410669161760211, 0.2826550412935365166648,
			0.2826550412935365166648, 0.2599173410669161760211,
			0.2155625460008685809896, 0.1550404550825613655227,
			0.07856015374620000542994, 0.008264462809917355371901,
		},
	},
	13: {
		x: []float64{
			-1.0, -0.9659258262890682867497,
			-0.8660254037844386467637, -0.7071067811865475244008,
			-0.5000000000000000000000, -0.2588190451025207623489,
			0.0, 0.2588190451025207623489,
			0.5000000000000000000000, 0.7071067811865475244008,
			0.8660254037844386467637, 0.9659258262890682867497,
			1.0,
		},
		w: []float64{
			0.006993006993006993006993, 0.06605742495207439451748,
			0.1315425315425315425315, 0.1847633847633847633848,
			0.2269730269730269730270, 0.2526756937810443386012,
			0.2619898619898619898620, 0.2526756937810443386012,
			0.2269730269730269730270, 0.1847633847633847633848,
			0.1315425315425315425315, 0.06605742495207439451748,
			0.006993006993006993006993,
		},
	},
	14: {
		x: []float64{
			-1.0, -0.9709418174260520271570,
			-0.8854560256532098959004, -0.7485107481711010986346,
			-0.5680647467311558025118, -0.3546048870425356259696,
			-0.1205366802553230533491, 0.1205366802553230533491,
			0.3546048870425356259696, 0.5680647467311558025118,
			0.7485107481711010986346, 0.8854560256532098959004,
			0.9709418174260520271570, 1.0,
		},
		w: []float64{
			0.005917159763313609467456, 0.05646531376341444626795,
			0.1127686724898565588126, 0.1600380261167186852293,
			0.1989924103657832184809, 0.2259030497785644493484,
			0.2399153677223490323935, 0.2399153677223490323935,
			0.2259030497785644493484, 0.1989924103657832184809,
			0.1600380261167186852293, 0.1127686724898565588126,
			0.05646531376341444626795, 0.005917159763313609467456,
		},
	},
	15: {
		x: []float64{
			-1.0, -0.9749279121818236070181,
			-0.9009688679024191262361, -0.7818314824680298087084,
			-0.6234898018587335305250, -0.4338837391175581204758,
			-0.2225209339563144042889, 0.0,
			0.2225209339563144042889, 0.4338837391175581204758,
			0.6234898018587335305250, 0.7818314824680298087084,
			0.9009688679024191262361, 0.9749279121818236070181,
			1.0,
		},
		w: []float64{
			0.005128205128205128205128, 0.04869938729508823855065,
			0.09782039167605215912854, 0.1396650784956043180316,
			0.1756057890010667467654, 0.2020514674823835736368,
			0.2188815116305734017984, 0.2242963385820528677672,
			0.2188815116305734017984, 0.2020514674823835736368,
			0.1756057890010667467654, 0.1396650784956043180316,
			0.09782039167605215912854, 0.04869938729508823855065,
			0.005128205128205128205128,
		},
	},
	16: {
		x: []float64{
			-1.0, -0.9781476007338056379286,
			-0.9135454576426008955021, -0.8090169943749474241023,
			-0.6691306063588582138263, -0.5000000000000000000000,
			-0.3090169943749474241023, -0.1045284632676534713998,
			0.1045284632676534713998, 0.3090169943749474241023,
			0.5000000000000000000000, 0.6691306063588582138263,
			0.8090169943749474241023, 0.9135454576426008955021,
			0.9781476007338056379286, 1.0,
		},
		w: []float64{
			0.004444444444444444444444, 0.04251476624752508987960,
			0.08553884025933288290671, 0.1229401008284936153307,
			0.1557331760396736917593, 0.1813297813297813297813,
			0.1992147813263885395514, 0.2082841095243604063465,
			0.2082841095243604063465, 0.1992147813263885395514,
			0.1813297813297813297813, 0.1557331760396736917593,
			0.1229401008284936153307, 0.08553884025933288290671,
			0.04251476624752508987960, 0.004444444444444444444444,
		},
	},
	17: {
		x: []float64{
			-1.0, -0.9807852804032304491262,
			-0.9238795325112867561282, -0.8314696123025452370788,
			-0.7071067811865475244008, -0.5555702330196022247428,
			-0.3826834323650897717285, -0.1950903220161282678483,
			0.0, 0.1950903220161282678483,
			0.3826834323650897717285, 0.5555702330196022247428,
			0.7071067811865475244008, 0.8314696123025452370788,
			0.9238795325112867561282, 0.9807852804032304491262,
			1.0,
		},
		w: []float64{
			0.003921568627450980392157, 0.03736870283720561032088,
			0.07548233154315183441341, 0.1089055525818909304437,
			0.1389564683682330741154, 0.1631726642817033025619,
			0.1814737842364933569965, 0.1925138646129256468696,
			0.1964101258218905277729, 0.1925138646129256468696,
			0.1814737842364933569965, 0.1631726642817033025619,
			0.1389564683682330741154, 0.1089055525818909304437,
			0.07548233154315183441341, 0.03736870283720561032088,
			0.003921568627450980392157,
		},
	},
	33: {
		x: []float64{
			-1.0, -0.9951847266721968862448,
			-0.9807852804032304491262, -0.9569403357322088649358,
			-0.9238795325112867561282, -0.8819212643483550297128,
			-0.8314696123025452370788, -0.7730104533627369608109,
			-0.7071067811865475244008, -0.6343932841636454982152,
			-0.5555702330196022247428, -0.4713967368259976485564,
			-0.3826834323650897717285, -0.2902846772544623676362,
			-0.1950903220161282678483, -0.09801714032956060199420,
			0.0, 0.09801714032956060199420,
			0.1950903220161282678483, 0.2902846772544623676362,
			0.3826834323650897717285, 0.4713967368259976485564,
			0.5555702330196022247428, 0.6343932841636454982152,
			0.7071067811865475244008, 0.7730104533627369608109,
			0.8314696123025452370788, 0.8819212643483550297128,
			0.9238795325112867561282, 0.9569403357322088649358,
			0.9807852804032304491262, 0.9951847266721968862448,
			1.0,
		},
		w: []float64{
			0.0009775171065493646138807, 0.009393197962955014701160,
			0.01923424513268114918293, 0.02845791667723369009363,
			0.03759434191404720601619, 0.04626276283775174949157,
			0.05455501630398031043774, 0.06227210954529400455296,
			0.06942757563043545089973, 0.07588380044138847047973,
			0.08163481765493851022881, 0.08657753844182743543864,
			0.09070611286772099873692, 0.09394324443876873572926,
			0.09629232594548817919312, 0.09769818820805558181999,
			0.09817857778176829676746, 0.09769818820805558181999,
			0.09629232594548817919312, 0.09394324443876873572926,
			0.09070611286772099873692, 0.08657753844182743543864,
			0.08163481765493851022881, 0.07588380044138847047973,
			0.06942757563043545089973, 0.06227210954529400455296,
			0.05455501630398031043774, 0.04626276283775174949157,
			0.03759434191404720601619, 0.02845791667723369009363,
			0.01923424513268114918293, 0.009393197962955014701160,
			0.0009775171065493646138807,
		},
	},
	65: {
		x: []float64{
			-1.0, -0.9987954562051723927148,
			-0.9951847266721968862448, -0.9891765099647809734517,
			-0.9807852804032304491262, -0.9700312531945439926040,
			-0.9569403357322088649358, -0.9415440651830207784125,
			-0.9238795325112867561282, -0.9039892931234433315862,
			-0.8819212643483550297128, -0.8577286100002720699023,
			-0.8314696123025452370788, -0.8032075314806449098067,
			-0.7730104533627369608109, -0.7409511253549590911756,
			-0.7071067811865475244008, -0.6715589548470184006254,
			-0.6343932841636454982152, -0.5956993044924333434670,
			-0.5555702330196022247428, -0.5141027441932217265937,
			-0.4713967368259976485564, -0.4275550934302820943210,
			-0.3826834323650897717285, -0.3368898533922200506893,
			-0.2902846772544623676362, -0.2429801799032638899483,
			-0.1950903220161282678483, -0.1467304744553617516589,
			-0.09801714032956060199420, -0.04906767432741801425495,
			0.0, 0.04906767432741801425495,
			0.09801714032956060199420, 0.1467304744553617516589,
			0.1950903220161282678483, 0.2429801799032638899483,
			0.2902846772544623676362, 0.3368898533922200506893,
			0.3826834323650897717285, 0.4275550934302820943210,
			0.4713967368259976485564, 0.5141027441932217265937,
			0.5555702330196022247428, 0.5956993044924333434670,
			0.6343932841636454982152, 0.6715589548470184006254,
			0.7071067811865475244008, 0.7409511253549590911756,
			0.7730104533627369608109, 0.8032075314806449098067,
			0.8314696123025452370788, 0.8577286100002720699023,
			0.8819212643483550297128, 0.9039892931234433315862,
			0.9238795325112867561282, 0.9415440651830207784125,
			0.9569403357322088649358, 0.9700312531945439926040,
			0.9807852804032304491262, 0.9891765099647809734517,
			0.9951847266721968862448, 0.9987954562051723927148,
			1.0,
		},
		w: []float64{
			0.0002442002442002442002442, 0.002351490675311703322366,
			0.004831465448790912642656, 0.007192693161736114024941,
			0.009582338795283790387011, 0.01192339471421277160284,
			0.01425206043235199678553, 0.01653498765728958964886,
			0.01878652974179578354166, 0.02098627442973743378125,
			0.02314069493435819847729, 0.02523506498175476590114,
			0.02727225714146838686382, 0.02924065319746833769552,
			0.03114129710406762447484, 0.03296454656997632997231,
			0.03471049818092511427047, 0.03637092028663918309175,
			0.03794545992128481711394, 0.03942698871295609975651,
			0.04081501340035783383554, 0.04210333111141810202820,
			0.04329151496169082934785, 0.04437417923925731579599,
			0.04535110955166067221033, 0.04621766751092557684030,
			0.04697395904661414870485, 0.04761604458525019296040,
			0.04814443257251220341002, 0.04855584485714105273713,
			0.04885125664306609370991, 0.04902801843102555294060,
			0.04908762351494245584778, 0.04902801843102555294060,
			0.04885125664306609370991, 0.04855584485714105273713,
			0.04814443257251220341002, 0.04761604458525019296040,
			0.04697395904661414870485, 0.04621766751092557684030,
			0.04535110955166067221033, 0.04437417923925731579599,
			0.04329151496169082934785, 0.04210333111141810202820,
			0.04081501340035783383554, 0.03942698871295609975651,
			0.03794545992128481711394, 0.03637092028663918309175,
			0.03471049818092511427047, 0.03296454656997632997231,
			0.03114129710406762447484, 0.02924065319746833769552,
			0.02727225714146838686382, 0.02523506498175476590114,
			0.02314069493435819847729, 0.02098627442973743378125,
			0.01878652974179578354166, 0.01653498765728958964886,
			0.01425206043235199678553, 0.01192339471421277160284,
			0.009582338795283790387011, 0.007192693161736114024941,
			0.004831465448790912642656, 0.002351490675311703322366,
			0.0002442002442002442002442,
		},
	},
	129: {
		x: []float64{
			-1.0, -0.9996988186962042201158,
			-0.9987954562051723927148, -0.9972904566786902161356,
			-0.9951847266721968862448, -0.9924795345987099981568,
			-0.9891765099647809734517, -0.9852776423889412447740,
			-0.9807852804032304491262, -0.9757021300385285444604,
			-0.9700312531945439926040, -0.9637760657954398666865,
			-0.9569403357322088649358, -0.9495281805930366671959,
			-0.9415440651830207784125, -0.9329927988347388877117,
			-0.9238795325112867561282, -0.9142097557035306546350,
			-0.9039892931234433315862, -0.8932243011955153203424,
			-0.8819212643483550297128, -0.8700869911087114186523,
			-0.8577286100002720699023, -0.8448535652497070732596,
			-0.8314696123025452370788, -0.8175848131515836965049,
			-0.8032075314806449098067, -0.7883464276266062620092,
			-0.7730104533627369608109, -0.7572088465064845475755,
			-0.7409511253549590911756, -0.7242470829514669209411,
			-0.7071067811865475244008, -0.6895405447370669246167,
			-0.6715589548470184006254, -0.6531728429537767640842,
			-0.6343932841636454982152, -0.6152315905806268454849,
			-0.5956993044924333434670, -0.5758081914178453007460,
			-0.5555702330196022247428, -0.5349976198870972106631,
			-0.5141027441932217265937, -0.4928981922297840368730,
			-0.4713967368259976485564, -0.4496113296546066000463,
			-0.4275550934302820943210, -0.4052413140049898709085,
			-0.3826834323650897717285, -0.3598950365349881487751,
			-0.3368898533922200506893, -0.3136817403988914766565,
			-0.2902846772544623676362, -0.2667127574748983863253,
			-0.2429801799032638899483, -0.2191012401568697972277,
			-0.1950903220161282678483, -0.1709618887603012263636,
			-0.1467304744553617516589, -0.1224106751992161984987,
			-0.09801714032956060199420, -0.07356456359966742352947,
			-0.04906767432741801425495, -0.02454122852291228803173,
			0.0, 0.02454122852291228803173,
			0.04906767432741801425495, 0.07356456359966742352947,
			0.09801714032956060199420, 0.1224106751992161984987,
			0.1467304744553617516589, 0.1709618887603012263636,
			0.1950903220161282678483, 0.2191012401568697972277,
			0.2429801799032638899483, 0.2667127574748983863253,
			0.2902846772544623676362, 0.3136817403988914766565,
			0.3368898533922200506893, 0.3598950365349881487751,
			0.3826834323650897717285, 0.4052413140049898709085,
			0.4275550934302820943210, 0.4496113296546066000463,
			0.4713967368259976485564, 0.4928981922297840368730,
			0.5141027441932217265937, 0.5349976198870972106631,
			0.5555702330196022247428, 0.5758081914178453007460,
			0.5956993044924333434670, 0.6152315905806268454849,
			0.6343932841636454982152, 0.6531728429537767640842,
			0.6715589548470184006254, 0.6895405447370669246167,
			0.7071067811865475244008, 0.7242470829514669209411,
			0.7409511253549590911756, 0.7572088465064845475755,
			0.7730104533627369608109, 0.7883464276266062620092,
			0.8032075314806449098067, 0.8175848131515836965049,
			0.8314696123025452370788, 0.8448535652497070732596,
			0.8577286100002720699023, 0.8700869911087114186523,
			0.8819212643483550297128, 0.8932243011955153203424,
			0.9039892931234433315862, 0.9142097557035306546350,
			0.9238795325112867561282, 0.9329927988347388877117,
			0.9415440651830207784125, 0.9495281805930366671959,
			0.9569403357322088649358, 0.9637760657954398666865,
			0.9700312531945439926040, 0.9757021300385285444604,
			0.9807852804032304491262, 0.9852776423889412447740,
			0.9891765099647809734517, 0.9924795345987099981568,
			0.9951847266721968862448, 0.9972904566786902161356,
			0.9987954562051723927148, 0.9996988186962042201158,
			1.0,
		},
		w: []float64{
			0.00006103888176768601599219, 0.0005880721538286975444586,
			0.001209300618752739908820, 0.001803081266953623595590,
			0.002407153278771409147365, 0.003003458699044971279399,
			0.003601978358126141472382, 0.004195537987185346750506,
			0.004788621433413367626393, 0.005377247468401846214391,
			0.005963880347307995211854, 0.006545908438622989284308,
			0.007124833323254897849961, 0.007698757788960828106944,
			0.008268651542030871082878, 0.008833038674701335806361,
			0.009392565839348148705954, 0.009946027849234579054070,
			0.01049386202576892124590, 0.01103504877427254183540,
			0.01156988348290849967456, 0.01209748052807164112706,
			0.01261803597977743271313, 0.01313076516693974629842,
			0.01363579321293772046661, 0.01413241437853094133403,
			0.01462070254634350205284, 0.01510001572479266782623,
			0.01557039073899425960255, 0.01603123858745057915787,
			0.01648256956220377908734, 0.01692383985846499367538,
			0.01735504125411394957968, 0.01777566938875279997477,
			0.01818570377926339480592, 0.01858467519566908661384,
			0.01897255587067948425912, 0.01934890842392451844131,
			0.01971370183700155724604, 0.02006652805198357603976,
			0.02040735612003867862766, 0.02073580533490147815673,
			0.02105184759002011131256, 0.02135512797425970725264,
			0.02164562356712882440431, 0.02192300400598756892025,
			0.02218725355897195087745, 0.02243806539722630183984,
			0.02267543270456671717601, 0.02289907134390605882118,
			0.02310898491627407167529, 0.02330491126131143273094,
			0.02348686571193163505350, 0.02365460746057766522644,
			0.02380816473024258974588, 0.02394731750476901502095,
			0.02407210792327849999659, 0.02418233623893147566764,
			0.02427805942075745923478, 0.02435909748927643184368,
			0.02442552306156708689668, 0.02447717542743444283965,
			0.02451414358881568292304, 0.02453628559651495472795,
			0.02454370750551418262591, 0.02453628559651495472795,
			0.02451414358881568292304, 0.02447717542743444283965,
			0.02442552306156708689668, 0.02435909748927643184368,
			0.02427805942075745923478, 0.02418233623893147566764,
			0.02407210792327849999659, 0.02394731750476901502095,
			0.02380816473024258974588, 0.02365460746057766522644,
			0.02348686571193163505350, 0.02330491126131143273094,
			0.02310898491627407167529, 0.02289907134390605882118,
			0.02267543270456671717601, 0.02243806539722630183984,
			0.02218725355897195087745, 0.02192300400598756892025,
			0.02164562356712882440431, 0.02135512797425970725264,
			0.02105184759002011131256, 0.02073580533490147815673,
			0.02040735612003867862766, 0.02006652805198357603976,
			0.01971370183700155724604, 0.01934890842392451844131,
			0.01897255587067948425912, 0.01858467519566908661384,
			0.01818570377926339480592, 0.01777566938875279997477,
			0.01735504125411394957968, 0.01692383985846499367538,
			0.01648256956220377908734, 0.01603123858745057915787,
			0.01557039073899425960255, 0.01510001572479266782623,
			0.01462070254634350205284, 0.01413241437853094133403,
			0.01363579321293772046661, 0.01313076516693974629842,
			0.01261803597977743271313, 0.01209748052807164112706,
			0.01156988348290849967456, 0.01103504877427254183540,
			0.01049386202576892124590, 0.009946027849234579054070,
			0.009392565839348148705954, 0.008833038674701335806361,
			0.008268651542030871082878, 0.007698757788960828106944,
			0.007124833323254897849961, 0.006545908438622989284308,
			0.005963880347307995211854, 0.005377247468401846214391,
			0.004788621433413367626393, 0.004195537987185346750506,
			0.003601978358126141472382, 0.003003458699044971279399,
			0.002407153278771409147365, 0.001803081266953623595590,
			0.001209300618752739908820, 0.0005880721538286975444586,
			0.00006103888176768601599219,
		},
	},
}
