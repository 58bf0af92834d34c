package canonical

import "PriceSentinel/internal/model"

// SeedAliases is the curated community shorthand list, inserted at startup
// (existing rows win over the seed).
func SeedAliases() []model.ItemAlias {
	raw := [][3]string{
		// 목걸이
		{"암목", "암흑의목걸이", "악세서리"},
		{"생목", "생명의목걸이", "악세서리"},
		{"용목", "용의목걸이", "악세서리"},
		// 벨트
		{"암벨", "암흑의벨트", "악세서리"},
		{"생벨", "생명의벨트", "악세서리"},
		// 세트
		{"암셋", "암흑세트", "세트"},
		{"생셋", "생명세트", "세트"},
		{"강세", "강화세트", "세트"},
		{"강세쌍", "강화세트", "세트"},
		{"브릴셋", "브릴리언트세트", "세트"},
		{"엘리스셋", "엘리스세트", "세트"},
		{"백갑셋", "백갑옷세트", "세트"},
		{"적갑셋", "적갑옷세트", "세트"},
		{"마좀셋", "마법좀비의상세트", "세트"},
		{"도적갑셋", "도적갑옷세트", "세트"},
		{"도가적갑셋", "도적갑옷세트", "세트"},
		// 투구
		{"주뚜", "주작투구", "방어구"},
		{"주작뚜", "주작투구", "방어구"},
		// 반지
		{"주작", "주작반지", "악세서리"},
		{"주작반지쌍", "주작반지", "악세서리"},
		{"주작쌍", "주작반지", "악세서리"},
		{"나겔반지", "나겔링반지", "악세서리"},
		{"나겔반지쌍", "나겔링반지", "악세서리"},
		{"나겔귀", "나겔링귀걸이", "악세서리"},
		{"나겔각", "나겔링각반", "방어구"},
		{"나겔장", "나겔링장갑", "방어구"},
		{"나겔벨", "나겔링벨트", "악세서리"},
		{"나겔벨트", "나겔링벨트", "악세서리"},
		{"나겔스톤", "나겔링스톤", "재료"},
		{"스컬", "스컬링", "악세서리"},
		{"강시쌍", "강시반지", "악세서리"},
		{"둠륜안", "둠의룬안대", "악세서리"},
		{"둠륜안쌍", "둠의룬안대", "악세서리"},
		// 무기
		{"매프", "매직프람", "무기"},
		{"가지", "가지의무기", "무기"},
		{"돈파", "돈파무기", "무기"},
		{"글럽", "글럽무기", "무기"},
		// 기타 악세
		{"승릴", "승리의릴리", "악세서리"},
		{"승꽃", "승리의꽃", "악세서리"},
		{"승아", "승리의아뮬렛", "악세서리"},
		{"구미호꼬리", "구미호의꼬리", "악세서리"},
		{"악마꼬리", "악마의꼬리", "악세서리"},
		{"테레지아", "테레지아망토", "방어구"},
		{"깃펜", "운명의깃펜", "악세서리"},
		{"운명깃펜", "운명의깃펜", "악세서리"},
		{"보마", "보온마스크", "악세서리"},
		{"보온마", "보온마스크", "악세서리"},
		{"써클릿", "주작의서클릿", "악세서리"},
		{"서클릿", "주작의서클릿", "악세서리"},
		// 재료
		{"에테르", "에테르", "재료"},
		{"에테", "에테르", "재료"},
		{"코어스톤", "코어스톤", "재료"},
		// 방어구
		{"루딘블", "루딘블랙", "방어구"},
		{"루딘", "루딘블랙", "방어구"},
		{"나무꾼쌍", "나무꾼반지", "악세서리"},
	}

	aliases := make([]model.ItemAlias, 0, len(raw))
	for _, r := range raw {
		aliases = append(aliases, model.ItemAlias{Alias: r[0], CanonicalName: r[1], Category: r[2]})
	}
	return aliases
}
