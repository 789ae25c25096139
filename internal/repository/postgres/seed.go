package postgres

import "github.com/packmate/backend/internal/domain"

// DefaultThemeTemplates returns the built-in checklists seeded into an
// empty theme store
func DefaultThemeTemplates() []domain.ThemeTemplate {
	return []domain.ThemeTemplate{
		{
			ThemeName: "waterSports",
			Items: []domain.Item{
				{Name: "수영복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "선글라스", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "비치타올", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "방수팩", Category: domain.CategoryElectronics},
				{Name: "샌들", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "래쉬가드", Category: domain.CategoryClothing},
				{Name: "물안경", Category: domain.CategoryEssentials},
				{Name: "수영 모자", Category: domain.CategoryClothing},
				{Name: "방수 카메라", Category: domain.CategoryElectronics},
				{Name: "튜브/구명조끼", Category: domain.CategoryEssentials},
				{Name: "방수 시계", Category: domain.CategoryElectronics},
			},
		},
		{
			ThemeName: "cycling",
			Items: []domain.Item{
				{Name: "자전거", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "헬멧", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "자전거 장갑", Category: domain.CategoryClothing},
				{Name: "패드 팬츠", Category: domain.CategoryClothing},
				{Name: "자전거 물통", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "반사 조끼/의류", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "자전거 수리 키트", Category: domain.CategoryEssentials},
				{Name: "자전거 잠금장치", Category: domain.CategoryEssentials},
				{Name: "바람막이 자켓", Category: domain.CategoryClothing},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "운동용 마스크", Category: domain.CategoryClothing},
				{Name: "스포츠 선글라스", Category: domain.CategoryClothing},
			},
		},
		{
			ThemeName: "camping",
			Items: []domain.Item{
				{Name: "텐트", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "침낭", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "매트/패드", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "랜턴/손전등", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "다용도 칼", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물통", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "코펠/취사도구", Category: domain.CategoryEssentials},
				{Name: "캠핑 의자", Category: domain.CategoryEssentials},
				{Name: "버너", Category: domain.CategoryEssentials},
				{Name: "방충제", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "두꺼운 양말", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "기본 응급 키트", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "방수 성냥/라이터", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "방한 모자", Category: domain.CategoryClothing},
			},
		},
		{
			ThemeName: "picnic",
			Items: []domain.Item{
				{Name: "돗자리/매트", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "도시락/음식", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물/음료", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "일회용 접시/컵", Category: domain.CategoryEssentials},
				{Name: "냅킨/물티슈", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "쓰레기 봉투", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing},
				{Name: "플레이어/스피커", Category: domain.CategoryElectronics},
				{Name: "간단한 게임도구", Category: domain.CategoryEssentials},
				{Name: "방충제", Category: domain.CategoryToiletries},
				{Name: "카메라", Category: domain.CategoryElectronics},
			},
		},
		{
			ThemeName: "mountain",
			Items: []domain.Item{
				{Name: "등산화", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "등산복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "등산 배낭", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물통", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "등산 양말", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "구급상자", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "에너지바/초콜릿", Category: domain.CategoryEssentials},
				{Name: "비상용 호루라기", Category: domain.CategoryEssentials},
				{Name: "등산 장갑", Category: domain.CategoryClothing},
				{Name: "지도/나침반", Category: domain.CategoryEssentials},
				{Name: "트레킹 스틱", Category: domain.CategoryEssentials},
				{Name: "헤드랜턴", Category: domain.CategoryEssentials},
				{Name: "방수 자켓", Category: domain.CategoryClothing},
			},
		},
		{
			ThemeName: "skiing",
			Items: []domain.Item{
				{Name: "스키/스노보드", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "스키 부츠", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "스키 의류", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "방수 장갑", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "고글", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "방한 모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "넥워머", Category: domain.CategoryClothing},
				{Name: "방한 내의", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "두꺼운 양말", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "립밤", Category: domain.CategoryToiletries},
				{Name: "스키 패스 홀더", Category: domain.CategoryEssentials},
				{Name: "수분 크림", Category: domain.CategoryToiletries},
				{Name: "보온병", Category: domain.CategoryEssentials},
				{Name: "헬멧", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "fishing",
			Items: []domain.Item{
				{Name: "낚싯대", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "낚시 도구", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "미끼", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "얼음팩/쿨러", Category: domain.CategoryEssentials},
				{Name: "방수 바지/장화", Category: domain.CategoryClothing},
				{Name: "낚시 조끼", Category: domain.CategoryClothing},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "방충제", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "접이식 의자", Category: domain.CategoryEssentials},
				{Name: "장갑", Category: domain.CategoryClothing},
				{Name: "선글라스", Category: domain.CategoryClothing},
				{Name: "손전등", Category: domain.CategoryEssentials},
				{Name: "구급상자", Category: domain.CategoryMedicines},
			},
		},
		{
			ThemeName: "shopping",
			Items: []domain.Item{
				{Name: "쇼핑백/에코백", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "신용카드/현금", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "편안한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "휴대폰/충전기", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "쇼핑 리스트", Category: domain.CategoryDocuments},
				{Name: "물통", Category: domain.CategoryEssentials},
				{Name: "간식", Category: domain.CategoryEssentials},
				{Name: "쇼핑몰 지도", Category: domain.CategoryDocuments},
				{Name: "작은 가방/파우치", Category: domain.CategoryEssentials},
				{Name: "계산기/환율 앱", Category: domain.CategoryElectronics},
				{Name: "얇은 재킷", Category: domain.CategoryClothing},
				{Name: "사이즈 측정 테이프", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "themepark",
			Items: []domain.Item{
				{Name: "입장권/예약 확인서", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "편안한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "가벼운 배낭", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물통", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "간식", Category: domain.CategoryEssentials},
				{Name: "비상약", Category: domain.CategoryMedicines},
				{Name: "물티슈", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "휴대용 선풍기", Category: domain.CategoryElectronics},
				{Name: "카메라", Category: domain.CategoryElectronics},
				{Name: "테마파크 지도", Category: domain.CategoryDocuments},
				{Name: "여벌 옷", Category: domain.CategoryClothing},
			},
		},
		{
			ThemeName: "other",
			Items: []domain.Item{
				{Name: "신분증", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "충전기", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "여행 서류", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "현금/카드", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "여분 옷", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "세면도구", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "상비약", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "우산/우비", Category: domain.CategoryEssentials},
				{Name: "여행용 티슈/물티슈", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "편안한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "카메라", Category: domain.CategoryElectronics},
				{Name: "여행 베개", Category: domain.CategoryEssentials},
				{Name: "지도/가이드북", Category: domain.CategoryDocuments},
				{Name: "이어폰/헤드폰", Category: domain.CategoryElectronics},
			},
		},
		{
			ThemeName: "business",
			Items: []domain.Item{
				{Name: "정장/비즈니스 캐주얼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "드레스 셔츠/블라우스", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "넥타이/스카프", Category: domain.CategoryClothing},
				{Name: "구두", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "노트북", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "명함", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "서류 가방", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "충전기/어댑터", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "프레젠테이션 자료", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "명함 지갑", Category: domain.CategoryEssentials},
				{Name: "노트/펜", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "휴대용 다리미", Category: domain.CategoryElectronics},
			},
		},
		{
			ThemeName: "beach",
			Items: []domain.Item{
				{Name: "수영복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "비치웨어", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "샌들/슬리퍼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "비치 타올", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "비치백", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "파라솔", Category: domain.CategoryEssentials},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "선글라스", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "보습 스프레이", Category: domain.CategoryToiletries},
				{Name: "방수 파우치", Category: domain.CategoryEssentials},
				{Name: "쿨러백", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "cultural",
			Items: []domain.Item{
				{Name: "편안한 운동화", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "카메라", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "가이드북", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "메모장/펜", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "박물관 패스", Category: domain.CategoryDocuments},
				{Name: "경량 배낭", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "충전기", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "긴팔 옷", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "스카프", Category: domain.CategoryClothing},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "간식", Category: domain.CategoryEssentials},
				{Name: "지도", Category: domain.CategoryDocuments},
			},
		},
		{
			ThemeName: "photography",
			Items: []domain.Item{
				{Name: "DSLR/미러리스 카메라", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "여분 렌즈", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "삼각대", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "여분 배터리", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "메모리카드", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "렌즈 청소 도구", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "카메라 가방", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "필터", Category: domain.CategoryElectronics},
				{Name: "반사판", Category: domain.CategoryElectronics},
				{Name: "노트북/태블릿", Category: domain.CategoryElectronics},
				{Name: "외장하드", Category: domain.CategoryElectronics},
				{Name: "충전기", Category: domain.CategoryElectronics, IsEssential: true},
			},
		},
		{
			ThemeName: "family",
			Items: []domain.Item{
				{Name: "아이 옷 여벌", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "기저귀", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물티슈", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "젖병/이유식", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "아이 간식", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "장난감", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "유모차", Category: domain.CategoryEssentials},
				{Name: "카시트", Category: domain.CategoryEssentials},
				{Name: "아이 약품", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "아이 선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "아이 수영복", Category: domain.CategoryClothing},
				{Name: "보온병", Category: domain.CategoryEssentials, IsEssential: true},
			},
		},
		{
			ThemeName: "backpacking",
			Items: []domain.Item{
				{Name: "배낭", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "여행용 수건", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "세탁 세제", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "자물쇠", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "슬리퍼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "압축 팩", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "여권 파우치", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "멀티탭", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "유스호스텔 카드", Category: domain.CategoryDocuments},
				{Name: "침낭 라이너", Category: domain.CategoryEssentials},
				{Name: "여행용 베개", Category: domain.CategoryEssentials},
				{Name: "귀마개", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "wellness",
			Items: []domain.Item{
				{Name: "요가 매트", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "운동복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "슬리퍼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "목욕 가운", Category: domain.CategoryClothing},
				{Name: "마사지 오일", Category: domain.CategoryToiletries},
				{Name: "아로마 오일", Category: domain.CategoryToiletries},
				{Name: "명상 앱", Category: domain.CategoryElectronics},
				{Name: "이어폰", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "건강 간식", Category: domain.CategoryEssentials},
				{Name: "선글라스", Category: domain.CategoryEssentials},
				{Name: "편한 옷", Category: domain.CategoryClothing, IsEssential: true},
			},
		},
		{
			ThemeName: "safari",
			Items: []domain.Item{
				{Name: "쌍안경", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "카키색 옷", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "방충제", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "자외선 차단제", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "카메라", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "망원렌즈", Category: domain.CategoryElectronics},
				{Name: "먼지 방지 커버", Category: domain.CategoryEssentials},
				{Name: "부츠", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "긴팔/긴바지", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "손전등", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
			},
		},
		{
			ThemeName: "cruise",
			Items: []domain.Item{
				{Name: "정장/칵테일 드레스", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "캐주얼 의류", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "수영복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "운동화", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "구두", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "멀미약", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선글라스", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "가벼운 재킷", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "비치타올", Category: domain.CategoryEssentials},
				{Name: "방수 가방", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "desert",
			Items: []domain.Item{
				{Name: "스카프/터번", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "긴팔 셔츠", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "긴바지", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선글라스", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "튼튼한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "물병(대용량)", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "전해질 보충제", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "립밤", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "모래 방지 커버", Category: domain.CategoryEssentials},
				{Name: "야간용 재킷", Category: domain.CategoryClothing, IsEssential: true},
			},
		},
		{
			ThemeName: "sports",
			Items: []domain.Item{
				{Name: "팀 유니폼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "운동화", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "응원 도구", Category: domain.CategoryEssentials},
				{Name: "방석", Category: domain.CategoryEssentials},
				{Name: "우비", Category: domain.CategoryClothing},
				{Name: "쌍안경", Category: domain.CategoryEssentials},
				{Name: "캡모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "간식", Category: domain.CategoryEssentials},
				{Name: "카메라", Category: domain.CategoryElectronics},
				{Name: "현금", Category: domain.CategoryEssentials, IsEssential: true},
			},
		},
		{
			ThemeName: "roadtrip",
			Items: []domain.Item{
				{Name: "차량용 충전기", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "네비게이션", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "음악 플레이리스트", Category: domain.CategoryEssentials},
				{Name: "쿨러/아이스박스", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "담요", Category: domain.CategoryEssentials},
				{Name: "베개", Category: domain.CategoryEssentials},
				{Name: "간식", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "물티슈", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "휴지", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "구급상자", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "차량 정비 도구", Category: domain.CategoryEssentials},
				{Name: "주차 동전", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "study",
			Items: []domain.Item{
				{Name: "노트북", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "교재", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "사전", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "필기구", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "노트", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "유학생 비자", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "증명사진", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "변압기", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "장기체류 의류", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "세탁용품", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "조리도구", Category: domain.CategoryEssentials},
				{Name: "침구", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "glamping",
			Items: []domain.Item{
				{Name: "가벼운 침구", Category: domain.CategoryEssentials},
				{Name: "와인/와인잔", Category: domain.CategoryEssentials},
				{Name: "블루투스 스피커", Category: domain.CategoryElectronics},
				{Name: "분위기 조명", Category: domain.CategoryElectronics},
				{Name: "보드게임", Category: domain.CategoryEssentials},
				{Name: "바비큐 도구", Category: domain.CategoryEssentials},
				{Name: "쿨러", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "편한 옷", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "슬리퍼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "카메라", Category: domain.CategoryElectronics},
				{Name: "간식", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "음료", Category: domain.CategoryEssentials, IsEssential: true},
			},
		},
		{
			ThemeName: "medical",
			Items: []domain.Item{
				{Name: "의료 기록", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "처방전", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "보험 서류", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "편한 옷", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "슬리퍼", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "회복용 베개", Category: domain.CategoryEssentials},
				{Name: "약품", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "붕대/거즈", Category: domain.CategoryMedicines},
				{Name: "체온계", Category: domain.CategoryMedicines},
				{Name: "혈압계", Category: domain.CategoryMedicines},
				{Name: "동반자 연락처", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "통역 앱", Category: domain.CategoryElectronics},
			},
		},
		{
			ThemeName: "adventure",
			Items: []domain.Item{
				{Name: "액션캠", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "헬멧", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "보호대", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "스포츠 의류", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "튼튼한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "응급 키트", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "방수 가방", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "에너지바", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "전해질 음료", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "로프", Category: domain.CategoryEssentials},
				{Name: "손전등", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "호루라기", Category: domain.CategoryEssentials, IsEssential: true},
			},
		},
		{
			ThemeName: "diving",
			Items: []domain.Item{
				{Name: "다이빙 자격증", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "다이빙 로그북", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "수영복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "래시가드", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "다이빙 마스크", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "스노클", Category: domain.CategoryEssentials},
				{Name: "핀", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "수중 카메라", Category: domain.CategoryElectronics},
				{Name: "방수 가방", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "타올", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "이퀄라이징 약", Category: domain.CategoryMedicines},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
			},
		},
		{
			ThemeName: "music",
			Items: []domain.Item{
				{Name: "티켓", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "귀마개", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "일회용 우비", Category: domain.CategoryClothing},
				{Name: "휴대용 의자", Category: domain.CategoryEssentials},
				{Name: "배터리 팩", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "현금", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "작은 가방", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "편한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "간식", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "wine",
			Items: []domain.Item{
				{Name: "와인 오프너", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "와인 스토퍼", Category: domain.CategoryEssentials},
				{Name: "시음 노트", Category: domain.CategoryEssentials},
				{Name: "편한 신발", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "간단한 크래커", Category: domain.CategoryEssentials},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "카메라", Category: domain.CategoryElectronics},
				{Name: "가벼운 재킷", Category: domain.CategoryClothing},
				{Name: "선글라스", Category: domain.CategoryEssentials},
				{Name: "모자", Category: domain.CategoryClothing},
				{Name: "작은 쿨러백", Category: domain.CategoryEssentials},
				{Name: "와인 가방", Category: domain.CategoryEssentials},
			},
		},
		{
			ThemeName: "urban",
			Items: []domain.Item{
				{Name: "시티투어 패스", Category: domain.CategoryDocuments},
				{Name: "편한 운동화", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "도시 지도", Category: domain.CategoryDocuments},
				{Name: "대중교통 카드", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "경량 배낭", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "카메라", Category: domain.CategoryElectronics},
				{Name: "충전기", Category: domain.CategoryElectronics, IsEssential: true},
				{Name: "우산", Category: domain.CategoryEssentials},
				{Name: "가벼운 재킷", Category: domain.CategoryClothing},
				{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "간식", Category: domain.CategoryEssentials},
				{Name: "가이드북", Category: domain.CategoryDocuments},
			},
		},
		{
			ThemeName: "island",
			Items: []domain.Item{
				{Name: "선박 티켓", Category: domain.CategoryDocuments, IsEssential: true},
				{Name: "멀미약", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "수영복", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "비치타올", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "샌들", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "방수 가방", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
				{Name: "모기약", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
				{Name: "선글라스", Category: domain.CategoryEssentials, IsEssential: true},
				{Name: "간단한 약품", Category: domain.CategoryMedicines, IsEssential: true},
				{Name: "현금", Category: domain.CategoryEssentials, IsEssential: true},
			},
		},
	}
}
