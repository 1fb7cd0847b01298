package tables

// Gear64 holds the first 256 outputs of MT19937-64 seeded with 0.
// It is the default table for FastCDC. It is not hash-roll's GEAR_64, so FastCDC edges differ
// from hash-roll's for the same input.
var Gear64 = [256]uint64{
	0x28e837c5cb41dc3e, 0xfdfd3a7c3e40f98b, 0x0a213217f032e8b9, 0x98f56903cee3fcee,
	0x8ad330133b0725ac, 0x0ea2062afd5fe9ee, 0xa1abd7f3042ae12f, 0x6c6f1e45458246e8,
	0xd79e62976f604366, 0xe8035e3725df4a19, 0x6c53702c050d3513, 0xa7d08ac58a5cf6f8,
	0xee30bb851d47868e, 0x5829a6e6164ff306, 0x412e73c6d2c36438, 0x71d5f3d8d6af3241,
	0xca49da24d4b688f3, 0xb207125f669ef749, 0x8ec426bdaa4ec875, 0x49950aa05a7f5e9c,
	0x25543020003d8f0f, 0x944aa62c65f6a8f1, 0x9086530e5e01a162, 0x257ba86bc6240dca,
	0x26713c398a95082c, 0x051a63c496f8b52f, 0x8deda8537fa6161a, 0xaff5006cf2dab62a,
	0x635dff948b1a77df, 0xedc51a7f204c1569, 0x2e06f8c09cdc1bb8, 0x309dcdc1901a8c97,
	0x79e62ec29d25cf8b, 0x41d09e962310a3b3, 0xfafbfa9d4cfdc407, 0xfc47cbb307ee004f,
	0x28d7cf3c6a3011bf, 0xab8966e4aa3d91a2, 0xc48ca8f37ed75121, 0xd693285c6fb13ef0,
	0x2c2cbb3fa955c39f, 0x2149a6c8751e6809, 0x511533070d1522d0, 0xe2032d7b74cf6419,
	0x66598a6e9c41167e, 0x6af9d6c9b3a12ca9, 0x8414a3458a4b4603, 0x7ebb3c72234ae251,
	0x1d8d5daa93c5eb1c, 0xc2041a9b355570b3, 0x24d65589a8529ad0, 0x36cd58e87d2c7639,
	0x31f926b221b7a011, 0x988e0f3f2a3c9bac, 0xd7cc94d3e1d79751, 0xdd2838951d112e5b,
	0x878ddf94f8b0c702, 0x8a4feeec30677c20, 0x8876f2f3752e6f84, 0x1db2ec6afc40040f,
	0xf3453b11598aefb9, 0xcc2ca3620fdbdca5, 0x4741a63cbf4808a8, 0x8d9868f90fa100df,
	0x4d2bb4770253459a, 0x00b381a3888d850f, 0x11e281de3d6303d9, 0x32bd14b53c2e7764,
	0x0c1b5f00c4792840, 0x69dd93b0e9ecabd8, 0xe47005501e77e7ed, 0x688775b7d3dc215c,
	0xc5e52ae91706f5e6, 0xb1739fb195e42472, 0x133ad1c998ec3aa7, 0x01719cc56a2a4eb3,
	0x464939aa430658a5, 0xac6d9b82594653a8, 0xe7454cd68fbfd8db, 0x54962a263735104d,
	0x3a04472074da302b, 0xcdaaa6d61c39d840, 0x99d826930825dc42, 0xbf7dd5d89b01508a,
	0xaa4eb5d34c3af4e9, 0x278f267c7cd81982, 0x9ae07655b63a3d34, 0x7c5332673c7213bf,
	0x0c8d28167d5ca7f1, 0xaf4780bdaf47f9a6, 0xb660568648184f63, 0xbcd57ed3810bee69,
	0x907391fa9451bd95, 0x55c693df78c77b26, 0xff3c8d4b69f84d1c, 0xd6fa952966b72349,
	0xd9e9d64f2ba27e39, 0xa9809224f05853fc, 0xc911b240e03e6edf, 0xce1384ea52c3250b,
	0x67b1c3358a70ff2d, 0xcd28e564cd0b8897, 0xa040f1f997a4b387, 0x18bc3f6a48e8488c,
	0xd4cb942ec80277bd, 0x91f0d2d36a1d2763, 0x998897ecb33c1044, 0x74247453187ae19c,
	0xbdae4aa32d9abdc4, 0x5fdc43e5312caf28, 0x1a04b5751ece4a98, 0x97192fef9e3b0819,
	0xf848bce0f2aeca52, 0x1a64fc597d072c4a, 0x46a84945c2a61fdd, 0xa53a103a2f0b464b,
	0x71d0d57fe4c139a8, 0x932ec3f96ec7dc68, 0xafd74f85c77c06d8, 0xb7ac7a86645365db,
	0xf5d9bceab2e83e1a, 0xc677dab2492619b3, 0x81c0a28156eac3ff, 0xf3bd7d600734374d,
	0x1a70aa6cb4ceacc2, 0xd3be9a7fd39a89cc, 0x7cb7318958473b13, 0x464bc804699954a2,
	0x9fb7362c5350efe0, 0x575b0050ab4c7996, 0xc9394d2899efb503, 0x11faa16d181817a8,
	0x7ff68720a1417305, 0x0e7c8f36a4577349, 0x6780b45bda00d026, 0xab2ecf2ac8c46e9a,
	0x98a8d1ce65d8ec0e, 0x7cbb541e6b30ce5e, 0x4e5a10f4f04a262b, 0xafe099913620d30a,
	0x094d9913baa3068a, 0x8f7ac38d92d3f454, 0xdc476190a097099e, 0x1ae6b1e678966540,
	0x60dc49bf8f7de898, 0x6b6a9592a9ceb790, 0xf775d304f88b91e0, 0x735ce4b09154bcfd,
	0x64c35591b47d4842, 0x743fcfad69d14ae5, 0x9fb3861bbefe68ff, 0xd4a3869b26dfaf26,
	0x41464dfbd86bd488, 0x00f64c9e274c54f4, 0x73d6b453b44ffb90, 0x9895a7b16ea1317e,
	0xfaef358b42300c11, 0x202442eee6dfc486, 0x54c4530fc21127b9, 0x1b732561cf53f8f9,
	0x7dd1755770879abf, 0x5438458d7fb847f8, 0x2f2795700bf6376c, 0xa60a0cb7d010f84a,
	0x54bf1d7ae7e151e3, 0xb3a8eccb51defd43, 0x32b6befb59c6bdc5, 0xfbbd1cecb86fb171,
	0x1829192cd30d2b04, 0x557be2f62bbd3023, 0xf32e368f8e06dd0c, 0x203e000e1dda79a0,
	0x7cf9db7e12195d44, 0xc06622948d7cc8f1, 0x92da1f9a5693a6f0, 0x71bb2b0e111bc86e,
	0x025e3cdaca610a73, 0xa6786488dbec641d, 0xbb3c81df91f2ec6a, 0xfe2fc1e4d43853b9,
	0x96b17ffcdd5f722f, 0xf1720caa10aa16e7, 0x8ac8845f6ba195e9, 0x54c43c5a7be9fcf1,
	0xe930e6abcac40908, 0x47b5ad38e3628a1b, 0xa5b152577b23298c, 0xbd7c09930335c653,
	0x2e448d9f7587c6c9, 0xae256cc8541afb31, 0xd05626b4011adcba, 0x25ce5cd25b1faf93,
	0x9e9c4d839ca27a20, 0x38cf9ad15a71ae42, 0x13becdabace0ad2e, 0xb24660dcf7403904,
	0xafb8e5c8f6423b35, 0x80a6da9e23f476c6, 0xc6aa2d4cca558088, 0x8d68386a5bedf11a,
	0x761845bdb5d7a4f0, 0xd29ae0903d0b9c1a, 0x34a0172bdba4312a, 0x71aadff4067fa9f3,
	0x93428dbc33c8b7db, 0x9bdc433dd86bbafb, 0x742cf16dbc1ab55a, 0xe874ed55fdb7f31b,
	0x67997554b3a34a77, 0xbcf4bba40c1ec703, 0xf0487c3f90982c78, 0x44e52c0d249a12dc,
	0x3a54ae53f7af55a1, 0x42a062ae071576d5, 0xd7ad1a9d188ca00f, 0xcf9605c2b560a777,
	0xe89031bb16e8d4a1, 0xf4a57afa99dba3a0, 0xaf7e60b875b62e16, 0x5b4487b6c5ad3b0d,
	0xaa4a5bc97f63f5c3, 0xec95439234e8b98c, 0x0270fe3896e380ca, 0x08c6c7ca2c9e59d6,
	0xecc2f01120bc4275, 0xb4165f821794548e, 0x989130869bf091b5, 0x774a7ec53f21c203,
	0x8e9578eafdda5b3d, 0xe5cff26bc808e25a, 0xff3ffd09af42ebd4, 0x73fab72f7a1d9a98,
	0xc839f564fe1af813, 0xed3fb8bc50708281, 0xca8ca64f06a3e3e3, 0xeb0189e6145fb318,
	0xa8fbd836f743d7fb, 0x8dc62605d0a7f65d, 0x24656f16ccf35615, 0xbfe092ebf8482ee0,
	0xca1598365fcc1302, 0x79f10643105a3a7b, 0x521b7f50787c7689, 0x7a1900aec64123aa,
	0x4822c1419ecae0b7, 0xe6f224b4f9631fce, 0x9a06820554a5b50d, 0x5715a8cfa6ea5d27,
	0x665a07efc262ac91, 0xc8fba325ecf17a20, 0xe98d38d9a6b563d3, 0x74d6676c839c5f78,
	0x80f530b59602913d, 0xde0ef9b2efc4024d, 0x642e2351adcf8263, 0x4b3918bb49089eb8,
}

// Gear32 holds the upper 32 bits of each Gear64 entry.
// It is the default table for Gear32. Like Gear64 it is not hash-roll's table.
var Gear32 = [256]uint32{
	0x28e837c5, 0xfdfd3a7c, 0x0a213217, 0x98f56903, 0x8ad33013, 0x0ea2062a, 0xa1abd7f3, 0x6c6f1e45,
	0xd79e6297, 0xe8035e37, 0x6c53702c, 0xa7d08ac5, 0xee30bb85, 0x5829a6e6, 0x412e73c6, 0x71d5f3d8,
	0xca49da24, 0xb207125f, 0x8ec426bd, 0x49950aa0, 0x25543020, 0x944aa62c, 0x9086530e, 0x257ba86b,
	0x26713c39, 0x051a63c4, 0x8deda853, 0xaff5006c, 0x635dff94, 0xedc51a7f, 0x2e06f8c0, 0x309dcdc1,
	0x79e62ec2, 0x41d09e96, 0xfafbfa9d, 0xfc47cbb3, 0x28d7cf3c, 0xab8966e4, 0xc48ca8f3, 0xd693285c,
	0x2c2cbb3f, 0x2149a6c8, 0x51153307, 0xe2032d7b, 0x66598a6e, 0x6af9d6c9, 0x8414a345, 0x7ebb3c72,
	0x1d8d5daa, 0xc2041a9b, 0x24d65589, 0x36cd58e8, 0x31f926b2, 0x988e0f3f, 0xd7cc94d3, 0xdd283895,
	0x878ddf94, 0x8a4feeec, 0x8876f2f3, 0x1db2ec6a, 0xf3453b11, 0xcc2ca362, 0x4741a63c, 0x8d9868f9,
	0x4d2bb477, 0x00b381a3, 0x11e281de, 0x32bd14b5, 0x0c1b5f00, 0x69dd93b0, 0xe4700550, 0x688775b7,
	0xc5e52ae9, 0xb1739fb1, 0x133ad1c9, 0x01719cc5, 0x464939aa, 0xac6d9b82, 0xe7454cd6, 0x54962a26,
	0x3a044720, 0xcdaaa6d6, 0x99d82693, 0xbf7dd5d8, 0xaa4eb5d3, 0x278f267c, 0x9ae07655, 0x7c533267,
	0x0c8d2816, 0xaf4780bd, 0xb6605686, 0xbcd57ed3, 0x907391fa, 0x55c693df, 0xff3c8d4b, 0xd6fa9529,
	0xd9e9d64f, 0xa9809224, 0xc911b240, 0xce1384ea, 0x67b1c335, 0xcd28e564, 0xa040f1f9, 0x18bc3f6a,
	0xd4cb942e, 0x91f0d2d3, 0x998897ec, 0x74247453, 0xbdae4aa3, 0x5fdc43e5, 0x1a04b575, 0x97192fef,
	0xf848bce0, 0x1a64fc59, 0x46a84945, 0xa53a103a, 0x71d0d57f, 0x932ec3f9, 0xafd74f85, 0xb7ac7a86,
	0xf5d9bcea, 0xc677dab2, 0x81c0a281, 0xf3bd7d60, 0x1a70aa6c, 0xd3be9a7f, 0x7cb73189, 0x464bc804,
	0x9fb7362c, 0x575b0050, 0xc9394d28, 0x11faa16d, 0x7ff68720, 0x0e7c8f36, 0x6780b45b, 0xab2ecf2a,
	0x98a8d1ce, 0x7cbb541e, 0x4e5a10f4, 0xafe09991, 0x094d9913, 0x8f7ac38d, 0xdc476190, 0x1ae6b1e6,
	0x60dc49bf, 0x6b6a9592, 0xf775d304, 0x735ce4b0, 0x64c35591, 0x743fcfad, 0x9fb3861b, 0xd4a3869b,
	0x41464dfb, 0x00f64c9e, 0x73d6b453, 0x9895a7b1, 0xfaef358b, 0x202442ee, 0x54c4530f, 0x1b732561,
	0x7dd17557, 0x5438458d, 0x2f279570, 0xa60a0cb7, 0x54bf1d7a, 0xb3a8eccb, 0x32b6befb, 0xfbbd1cec,
	0x1829192c, 0x557be2f6, 0xf32e368f, 0x203e000e, 0x7cf9db7e, 0xc0662294, 0x92da1f9a, 0x71bb2b0e,
	0x025e3cda, 0xa6786488, 0xbb3c81df, 0xfe2fc1e4, 0x96b17ffc, 0xf1720caa, 0x8ac8845f, 0x54c43c5a,
	0xe930e6ab, 0x47b5ad38, 0xa5b15257, 0xbd7c0993, 0x2e448d9f, 0xae256cc8, 0xd05626b4, 0x25ce5cd2,
	0x9e9c4d83, 0x38cf9ad1, 0x13becdab, 0xb24660dc, 0xafb8e5c8, 0x80a6da9e, 0xc6aa2d4c, 0x8d68386a,
	0x761845bd, 0xd29ae090, 0x34a0172b, 0x71aadff4, 0x93428dbc, 0x9bdc433d, 0x742cf16d, 0xe874ed55,
	0x67997554, 0xbcf4bba4, 0xf0487c3f, 0x44e52c0d, 0x3a54ae53, 0x42a062ae, 0xd7ad1a9d, 0xcf9605c2,
	0xe89031bb, 0xf4a57afa, 0xaf7e60b8, 0x5b4487b6, 0xaa4a5bc9, 0xec954392, 0x0270fe38, 0x08c6c7ca,
	0xecc2f011, 0xb4165f82, 0x98913086, 0x774a7ec5, 0x8e9578ea, 0xe5cff26b, 0xff3ffd09, 0x73fab72f,
	0xc839f564, 0xed3fb8bc, 0xca8ca64f, 0xeb0189e6, 0xa8fbd836, 0x8dc62605, 0x24656f16, 0xbfe092eb,
	0xca159836, 0x79f10643, 0x521b7f50, 0x7a1900ae, 0x4822c141, 0xe6f224b4, 0x9a068205, 0x5715a8cf,
	0x665a07ef, 0xc8fba325, 0xe98d38d9, 0x74d6676c, 0x80f530b5, 0xde0ef9b2, 0x642e2351, 0x4b3918bb,
}
