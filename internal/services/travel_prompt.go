package services

import (
	"fmt"
	"strings"

	"tripnote/internal/models/plan_models"
	"tripnote/pkg/utils"
)

// BuildTravelPlanPrompt renders the itinerary-generation prompt from the trip
// parameters. Pure function: identical input produces a byte-identical prompt.
func BuildTravelPlanPrompt(input plan_models.TravelPlanLLMInput) string {
	duration := utils.TripDurationDays(input.StartDate, input.EndDate)
	concepts := strings.Join(input.Concepts, ", ")
	conceptsOrDefault := concepts
	if conceptsOrDefault == "" {
		conceptsOrDefault = "입력없음"
	}

	var b strings.Builder

	b.WriteString("당신은 AI 전문 여행 플래너이자 JSON Formatter 입니다.\n")
	b.WriteString("**당신의 응답은 반드시 JSON 형식만 포함해야 하며, JSON 외의 설명 문장, 불필요한 텍스트는 절대 포함하면 안 됩니다.**\n")
	b.WriteString("JSON 시작 전 어떤 말도 하지 마세요. JSON 이외의 텍스트가 하나라도 포함되면 잘못된 출력입니다.\n\n")
	b.WriteString("여행 정보를 기반으로 상세 여행 일정을 생성하세요.\n\n")

	b.WriteString("여행 정보:\n")
	fmt.Fprintf(&b, "- 출발지: %s\n", input.Departure)
	fmt.Fprintf(&b, "- 목적지: %s\n", input.Destination)
	fmt.Fprintf(&b, "- 동행자: %s\n", input.Companions)
	fmt.Fprintf(&b, "- 여행 기간: %s ~ %s (%d일)\n", input.StartDate, input.EndDate, duration)
	fmt.Fprintf(&b, "- 여행 컨셉: %s\n", concepts)
	if input.Preferences != "" {
		fmt.Fprintf(&b, "- 추가 선호사항: %s\n", input.Preferences)
	}

	b.WriteString("\n핵심 요구사항:\n")
	fmt.Fprintf(&b, "1. 출발지(%s) → 목적지(%s) 동선을 구글맵 기준으로 고려해 일정 구성.\n", input.Departure, input.Destination)
	b.WriteString("2. 이동 시간·거리(구글 맵 기준)를 반영해 첫날부터 마지막날까지 현실적 일정으로 작성.\n")
	b.WriteString("3. 하루 3~5개 장소 추천, 동선 최소화.\n")
	fmt.Fprintf(&b, "4. %d일의 상세 일정 작성.\n", duration)
	b.WriteString("5. 오전/오후/저녁 단위 시간대별 활동 포함.\n")
	fmt.Fprintf(&b, "6. 동행자(%s)와 여행 컨셉(%s)에 맞는 장소 선택.\n", input.Companions, conceptsOrDefault)
	b.WriteString("7. 실현 가능한 일정만 작성.\n")
	b.WriteString("8. 모든 장소는 구글 리뷰 3.0 이상.\n")
	b.WriteString("9. **숙소, 공항, 역, 교통 이동 자체는 장소 리스트에 포함하지 말 것. (식당/카페/명소/관광스팟/쇼핑/액티비티 등만 포함)**\n")
	b.WriteString("10. 각 장소는 반드시 다음 형식을 포함할 것:\n\n")

	b.WriteString("장소 정보 필드:\n")
	b.WriteString("- order: number (해당 날짜 내 활동 순서, 0부터 시작)\n")
	b.WriteString("- activityStartTime: string (예: \"09:00\")\n")
	b.WriteString("- activityEndTime: string (예: \"12:00\")\n")
	b.WriteString("- location: string\n")
	b.WriteString("- placeSearchQuery: string (구글 Places / Maps에서 검색하기 좋은 형태로, \"장소명 + 지역명\" 형식 예: \"스타벅스 홍대입구역점, Seoul\")\n")
	b.WriteString("- categories: string[]  (식당, 명소, 핫플, 관광스팟, 카페, 쇼핑, 액티비티)\n")
	b.WriteString("- travelTime: number | null  // 다음 장소까지 예상 이동 시간(분, 정수). 당일 마지막 활동은 null.\n")
	b.WriteString("- description: string (짧게 장소 특징 요약)\n\n")

	b.WriteString("주의:\n")
	b.WriteString("- travelTime은 구글맵 동선 자동차 기준으로 생각해서 분 단위 정수로 넣되, 확신이 없으면 근사치로 작성. 마지막 활동은 null.\n")
	b.WriteString("- coordinates/rating/operatingHours/placeId는 서버에서 채우므로 생성하지 말 것.\n\n")

	b.WriteString("동선 계획 원칙:\n")
	b.WriteString("- 이동 최소화\n")
	b.WriteString("- 운영 시간 고려\n")
	b.WriteString("- 구글 맵 기준 이동 시간 반영\n\n")

	b.WriteString("절대 포함하지 말 것:\n")
	b.WriteString("- 숙소(호텔, 펜션, 게스트하우스, 리조트)\n")
	b.WriteString("- 공항/역 정보\n")
	b.WriteString("- 교통편 설명(비행기, 열차, 버스 등)\n\n")

	b.WriteString("---\n\n")
	b.WriteString("출력 형식 규칙 (반드시 지킬 것)\n")
	b.WriteString("- 반드시 아래 JSON 형식 그대로 출력\n")
	b.WriteString("- JSON 외 텍스트 금지\n")
	b.WriteString("- null, undefined 대신 빈 문자열 또는 적절한 값 제공 (단, travelTime 마지막 활동은 null)\n")
	b.WriteString("- 모든 날짜는 ISO 포맷 유지\n\n")
	b.WriteString("---\n\n")

	b.WriteString("출력 JSON 형식:\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"recommendedPlaces\": [\"장소1\", \"장소2\", \"장소3\"],\n")
	b.WriteString("  \"schedule\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"day\": 1,\n")
	fmt.Fprintf(&b, "      \"date\": %q,\n", input.StartDate)
	b.WriteString("      \"activities\": [\n")
	b.WriteString("        {\n")
	b.WriteString("          \"order\": 0,\n")
	b.WriteString("          \"activityStartTime\": \"09:00\",\n")
	b.WriteString("          \"activityEndTime\": \"12:00\",\n")
	b.WriteString("          \"location\": \"장소명\",\n")
	b.WriteString("          \"placeSearchQuery\": \"장소명 + 지역명 형태의 검색용 문자열\",\n")
	b.WriteString("          \"categories\": [\"식당\", \"핫플\"],\n")
	b.WriteString("          \"travelTime\": 20,\n")
	b.WriteString("          \"description\": \"설명\"\n")
	b.WriteString("        }\n")
	b.WriteString("      ]\n")
	b.WriteString("    }\n")
	b.WriteString("  ],\n")
	b.WriteString("  \"summary\": \"전체 요약 설명\"\n")
	b.WriteString("}\n\n")

	b.WriteString("---\n\n")
	b.WriteString("최종 출력은 반드시 위 JSON 구조만 포함해야 합니다.\n")
	b.WriteString("JSON 외 텍스트, 마크다운, 설명 문장 포함 시 잘못된 출력입니다.\n")

	return b.String()
}
