package transform

// t2sTable 常用繁体字到简体字的单字映射。只做逐字转换，不处理
// 一简对多繁的词级歧义，覆盖常用字已能满足训练语料清洗的需要。
var t2sTable = map[rune]rune{
	'愛': '爱', '礙': '碍', '骯': '肮', '襖': '袄', '奧': '奥',
	'壩': '坝', '罷': '罢', '擺': '摆', '敗': '败', '頒': '颁',
	'辦': '办', '絆': '绊', '幫': '帮', '綁': '绑', '鎊': '镑',
	'謗': '谤', '飽': '饱', '寶': '宝', '報': '报', '鮑': '鲍',
	'輩': '辈', '貝': '贝', '鋇': '钡', '備': '备', '憊': '惫',
	'筆': '笔', '畢': '毕', '斃': '毙', '幣': '币', '閉': '闭',
	'邊': '边', '編': '编', '貶': '贬', '變': '变', '辯': '辩',
	'辮': '辫', '標': '标', '錶': '表', '別': '别', '癟': '瘪',
	'賓': '宾', '濱': '滨', '並': '并', '撥': '拨', '缽': '钵',
	'鉑': '铂', '駁': '驳', '補': '补', '佈': '布',
	'財': '财', '採': '采', '參': '参', '蠶': '蚕', '殘': '残',
	'慚': '惭', '慘': '惨', '燦': '灿', '倉': '仓', '滄': '沧',
	'艙': '舱', '冊': '册', '側': '侧', '廁': '厕', '測': '测',
	'層': '层', '詫': '诧', '攙': '搀', '摻': '掺', '蟬': '蝉',
	'饞': '馋', '讒': '谗', '纏': '缠', '鏟': '铲', '產': '产',
	'闡': '阐', '顫': '颤', '場': '场', '嘗': '尝', '長': '长',
	'償': '偿', '腸': '肠', '廠': '厂', '暢': '畅', '鈔': '钞',
	'車': '车', '徹': '彻', '塵': '尘', '陳': '陈', '襯': '衬',
	'稱': '称', '懲': '惩', '誠': '诚', '騁': '骋', '遲': '迟',
	'馳': '驰', '恥': '耻', '齒': '齿', '熾': '炽', '衝': '冲',
	'蟲': '虫', '寵': '宠', '疇': '畴', '躊': '踌', '籌': '筹',
	'綢': '绸', '醜': '丑', '櫥': '橱', '廚': '厨', '鋤': '锄',
	'雛': '雏', '礎': '础', '儲': '储', '觸': '触', '處': '处',
	'傳': '传', '瘡': '疮', '闖': '闯', '創': '创', '錘': '锤',
	'純': '纯', '綽': '绰', '辭': '辞', '詞': '词', '賜': '赐',
	'聰': '聪', '蔥': '葱', '囪': '囱', '從': '从', '叢': '丛',
	'湊': '凑', '竄': '窜', '錯': '错', '達': '达', '帶': '带',
	'貸': '贷', '擔': '担', '單': '单', '鄲': '郸', '撣': '掸',
	'膽': '胆', '憚': '惮', '誕': '诞', '彈': '弹', '當': '当',
	'擋': '挡', '黨': '党', '蕩': '荡', '檔': '档', '導': '导',
	'島': '岛', '禱': '祷', '盜': '盗', '燈': '灯', '鄧': '邓',
	'敵': '敌', '滌': '涤', '遞': '递', '締': '缔', '點': '点',
	'墊': '垫', '電': '电', '澱': '淀', '釣': '钓', '調': '调',
	'諜': '谍', '疊': '叠', '釘': '钉', '頂': '顶', '錠': '锭',
	'訂': '订', '丟': '丢', '東': '东', '動': '动', '棟': '栋',
	'凍': '冻', '鬥': '斗', '犢': '犊', '獨': '独', '讀': '读',
	'賭': '赌', '鍍': '镀', '鍛': '锻', '斷': '断', '緞': '缎',
	'兌': '兑', '隊': '队', '對': '对', '噸': '吨', '頓': '顿',
	'鈍': '钝', '奪': '夺', '墮': '堕', '鵝': '鹅', '額': '额',
	'訛': '讹', '惡': '恶', '餓': '饿', '兒': '儿', '爾': '尔',
	'餌': '饵', '貳': '贰', '發': '发', '罰': '罚', '閥': '阀',
	'琺': '珐', '礬': '矾', '釩': '钒', '煩': '烦', '範': '范',
	'販': '贩', '飯': '饭', '訪': '访', '紡': '纺', '飛': '飞',
	'誹': '诽', '廢': '废', '費': '费', '紛': '纷', '墳': '坟',
	'奮': '奋', '憤': '愤', '糞': '粪', '豐': '丰', '楓': '枫',
	'鋒': '锋', '風': '风', '瘋': '疯', '馮': '冯', '縫': '缝',
	'諷': '讽', '鳳': '凤', '膚': '肤', '輻': '辐', '撫': '抚',
	'輔': '辅', '賦': '赋', '復': '复', '負': '负', '訃': '讣',
	'婦': '妇', '縛': '缚', '該': '该', '鈣': '钙', '蓋': '盖',
	'幹': '干', '趕': '赶', '稈': '秆', '贛': '赣', '岡': '冈',
	'剛': '刚', '鋼': '钢', '綱': '纲', '崗': '岗', '皋': '皋',
	'鎬': '镐', '擱': '搁', '鴿': '鸽', '閣': '阁', '鉻': '铬',
	'個': '个', '給': '给', '根': '根', '耕': '耕', '鯁': '鲠',
	'龔': '龚', '宮': '宫', '鞏': '巩', '貢': '贡', '鉤': '钩',
	'溝': '沟', '構': '构', '購': '购', '夠': '够', '蠱': '蛊',
	'顧': '顾', '僱': '雇', '剮': '剐', '關': '关', '觀': '观',
	'館': '馆', '慣': '惯', '貫': '贯', '廣': '广', '規': '规',
	'矽': '硅', '歸': '归', '龜': '龟', '閨': '闺', '軌': '轨',
	'詭': '诡', '櫃': '柜', '貴': '贵', '劊': '刽', '輥': '辊',
	'滾': '滚', '鍋': '锅', '國': '国', '過': '过', '駭': '骇',
	'韓': '韩', '漢': '汉', '號': '号', '閡': '阂', '鶴': '鹤',
	'賀': '贺', '橫': '横', '轟': '轰', '鴻': '鸿', '紅': '红',
	'後': '后', '壺': '壶', '護': '护', '滬': '沪', '戶': '户',
	'嘩': '哗', '華': '华', '畫': '画', '劃': '划', '話': '话',
	'懷': '怀', '壞': '坏', '歡': '欢', '環': '环', '還': '还',
	'緩': '缓', '換': '换', '喚': '唤', '瘓': '痪', '煥': '焕',
	'黃': '黄', '謊': '谎', '揮': '挥', '輝': '辉', '毀': '毁',
	'賄': '贿', '穢': '秽', '會': '会', '燴': '烩', '匯': '汇',
	'諱': '讳', '誨': '诲', '繪': '绘', '葷': '荤', '渾': '浑',
	'夥': '伙', '獲': '获', '貨': '货', '禍': '祸', '擊': '击',
	'機': '机', '積': '积', '飢': '饥', '譏': '讥', '雞': '鸡',
	'績': '绩', '緝': '缉', '極': '极', '輯': '辑', '級': '级',
	'擠': '挤', '幾': '几', '薊': '蓟', '劑': '剂', '濟': '济',
	'計': '计', '記': '记', '際': '际', '繼': '继', '紀': '纪',
	'夾': '夹', '莢': '荚', '頰': '颊', '賈': '贾', '鉀': '钾',
	'價': '价', '駕': '驾', '殲': '歼', '監': '监', '堅': '坚',
	'箋': '笺', '間': '间', '艱': '艰', '緘': '缄', '繭': '茧',
	'檢': '检', '鹼': '碱', '揀': '拣', '減': '减', '薦': '荐',
	'檻': '槛', '鑒': '鉴', '踐': '践', '賤': '贱', '見': '见',
	'鍵': '键', '艦': '舰', '劍': '剑', '餞': '饯', '漸': '渐',
	'濺': '溅', '澗': '涧', '將': '将', '漿': '浆', '蔣': '蒋',
	'槳': '桨', '獎': '奖', '講': '讲', '醬': '酱', '膠': '胶',
	'澆': '浇', '驕': '骄', '嬌': '娇', '攪': '搅', '鉸': '铰',
	'矯': '矫', '僥': '侥', '腳': '脚', '餃': '饺', '繳': '缴',
	'絞': '绞', '轎': '轿', '較': '较', '階': '阶', '節': '节',
	'潔': '洁', '結': '结', '誡': '诫', '屆': '届', '緊': '紧',
	'錦': '锦', '僅': '仅', '謹': '谨', '進': '进', '晉': '晋',
	'燼': '烬', '盡': '尽', '勁': '劲', '荊': '荆', '莖': '茎',
	'經': '经', '驚': '惊', '鯨': '鲸', '穎': '颖', '頸': '颈',
	'靜': '静', '鏡': '镜', '徑': '径', '痙': '痉', '競': '竞',
	'淨': '净', '糾': '纠', '廄': '厩', '舊': '旧', '駒': '驹',
	'舉': '举', '據': '据', '鋸': '锯', '懼': '惧', '劇': '剧',
	'鵑': '鹃', '絹': '绢', '傑': '杰', '覺': '觉',
	'決': '决', '訣': '诀', '絕': '绝', '鈞': '钧', '軍': '军',
	'駿': '骏', '開': '开', '凱': '凯', '顆': '颗', '殼': '壳',
	'課': '课', '墾': '垦', '懇': '恳', '摳': '抠', '庫': '库',
	'褲': '裤', '誇': '夸', '塊': '块', '儈': '侩', '寬': '宽',
	'礦': '矿', '曠': '旷', '況': '况', '虧': '亏', '巋': '岿',
	'窺': '窥', '饋': '馈', '潰': '溃', '擴': '扩', '闊': '阔',
	'蠟': '蜡', '臘': '腊', '萊': '莱', '來': '来', '賴': '赖',
	'藍': '蓝', '欄': '栏', '攔': '拦', '籃': '篮', '闌': '阑',
	'蘭': '兰', '瀾': '澜', '讕': '谰', '攬': '揽', '覽': '览',
	'懶': '懒', '纜': '缆', '爛': '烂', '濫': '滥', '撈': '捞',
	'勞': '劳', '澇': '涝', '樂': '乐', '鐳': '镭', '壘': '垒',
	'類': '类', '淚': '泪', '籬': '篱', '離': '离', '鯉': '鲤',
	'禮': '礼', '麗': '丽', '厲': '厉', '勵': '励', '礫': '砾',
	'歷': '历', '瀝': '沥', '隸': '隶', '倆': '俩', '聯': '联',
	'蓮': '莲', '連': '连', '鐮': '镰', '憐': '怜', '漣': '涟',
	'簾': '帘', '斂': '敛', '臉': '脸', '鏈': '链', '戀': '恋',
	'煉': '炼', '練': '练', '糧': '粮', '涼': '凉', '兩': '两',
	'輛': '辆', '諒': '谅', '療': '疗', '遼': '辽', '鐐': '镣',
	'獵': '猎', '臨': '临', '鄰': '邻', '鱗': '鳞', '凜': '凛',
	'賃': '赁', '齡': '龄', '鈴': '铃', '靈': '灵', '嶺': '岭',
	'領': '领', '餾': '馏', '劉': '刘', '龍': '龙', '聾': '聋',
	'嚨': '咙', '籠': '笼', '壟': '垄', '攏': '拢', '隴': '陇',
	'樓': '楼', '婁': '娄', '摟': '搂', '簍': '篓', '蘆': '芦',
	'盧': '卢', '顱': '颅', '廬': '庐', '爐': '炉', '擄': '掳',
	'鹵': '卤', '虜': '虏', '魯': '鲁', '賂': '赂', '祿': '禄',
	'錄': '录', '陸': '陆', '驢': '驴', '呂': '吕', '鋁': '铝',
	'侶': '侣', '屢': '屡', '縷': '缕', '慮': '虑', '濾': '滤',
	'綠': '绿', '巒': '峦', '攣': '挛', '孿': '孪', '灤': '滦',
	'亂': '乱', '掄': '抡', '輪': '轮', '倫': '伦', '淪': '沦',
	'綸': '纶', '論': '论', '蘿': '萝', '羅': '罗', '邏': '逻',
	'鑼': '锣', '籮': '箩', '騾': '骡', '駱': '骆', '絡': '络',
	'媽': '妈', '瑪': '玛', '碼': '码', '螞': '蚂', '馬': '马',
	'罵': '骂', '嗎': '吗', '買': '买', '麥': '麦', '賣': '卖',
	'邁': '迈', '脈': '脉', '瞞': '瞒', '饅': '馒', '蠻': '蛮',
	'滿': '满', '謾': '谩', '貓': '猫', '錨': '锚', '鉚': '铆',
	'貿': '贸', '麼': '么', '沒': '没', '鎂': '镁', '門': '门',
	'悶': '闷', '們': '们', '錳': '锰', '夢': '梦', '謎': '谜',
	'彌': '弥', '覓': '觅', '冪': '幂', '綿': '绵', '緬': '缅',
	'廟': '庙', '滅': '灭', '憫': '悯', '閩': '闽', '鳴': '鸣',
	'銘': '铭', '謬': '谬', '謀': '谋', '畝': '亩', '鈉': '钠',
	'納': '纳', '難': '难', '撓': '挠', '腦': '脑', '惱': '恼',
	'鬧': '闹', '餒': '馁', '內': '内', '擬': '拟', '膩': '腻',
	'攆': '撵', '釀': '酿', '鳥': '鸟', '聶': '聂', '嚙': '啮',
	'鑷': '镊', '鎳': '镍', '檸': '柠', '獰': '狞', '寧': '宁',
	'擰': '拧', '濘': '泞', '鈕': '钮', '紐': '纽', '膿': '脓',
	'濃': '浓', '農': '农', '瘧': '疟', '諾': '诺', '歐': '欧',
	'鷗': '鸥', '毆': '殴', '嘔': '呕', '漚': '沤', '盤': '盘',
	'龐': '庞', '拋': '抛', '賠': '赔', '噴': '喷', '鵬': '鹏',
	'騙': '骗', '飄': '飘', '頻': '频', '貧': '贫', '蘋': '苹',
	'憑': '凭', '評': '评', '潑': '泼', '頗': '颇', '撲': '扑',
	'鋪': '铺', '樸': '朴', '譜': '谱', '臍': '脐', '齊': '齐',
	'騎': '骑', '豈': '岂', '啟': '启', '氣': '气', '棄': '弃',
	'訖': '讫', '牽': '牵', '釺': '钎', '鉛': '铅', '遷': '迁',
	'簽': '签', '謙': '谦', '錢': '钱', '鉗': '钳', '潛': '潜',
	'淺': '浅', '譴': '谴', '塹': '堑', '槍': '枪', '嗆': '呛',
	'牆': '墙', '薔': '蔷', '強': '强', '搶': '抢', '鍬': '锹',
	'橋': '桥', '喬': '乔', '僑': '侨', '翹': '翘', '竅': '窍',
	'竊': '窃', '欽': '钦', '親': '亲', '輕': '轻', '氫': '氢',
	'傾': '倾', '頃': '顷', '請': '请', '慶': '庆', '瓊': '琼',
	'窮': '穷', '趨': '趋', '區': '区', '軀': '躯', '驅': '驱',
	'齲': '龋', '顴': '颧', '權': '权', '勸': '劝', '卻': '却',
	'鵲': '鹊', '確': '确', '讓': '让', '饒': '饶', '擾': '扰',
	'繞': '绕', '熱': '热', '韌': '韧', '認': '认', '紉': '纫',
	'榮': '荣', '絨': '绒', '軟': '软', '銳': '锐', '閏': '闰',
	'潤': '润', '灑': '洒', '薩': '萨', '鰓': '鳃', '賽': '赛',
	'傘': '伞', '喪': '丧', '騷': '骚', '掃': '扫', '澀': '涩',
	'殺': '杀', '紗': '纱', '篩': '筛', '曬': '晒', '刪': '删',
	'閃': '闪', '陝': '陕', '贍': '赡', '繕': '缮', '傷': '伤',
	'賞': '赏', '燒': '烧', '紹': '绍', '賒': '赊', '攝': '摄',
	'懾': '慑', '設': '设', '紳': '绅', '審': '审', '嬸': '婶',
	'腎': '肾', '滲': '渗', '聲': '声', '繩': '绳', '勝': '胜',
	'聖': '圣', '師': '师', '獅': '狮', '濕': '湿', '詩': '诗',
	'屍': '尸', '時': '时', '蝕': '蚀', '實': '实', '識': '识',
	'駛': '驶', '勢': '势', '適': '适', '釋': '释', '飾': '饰',
	'視': '视', '試': '试', '壽': '寿', '獸': '兽', '樞': '枢',
	'輸': '输', '書': '书', '贖': '赎', '屬': '属', '術': '术',
	'樹': '树', '豎': '竖', '數': '数', '帥': '帅', '雙': '双',
	'誰': '谁', '稅': '税', '順': '顺', '說': '说', '碩': '硕',
	'爍': '烁', '絲': '丝', '飼': '饲', '聳': '耸', '慫': '怂',
	'頌': '颂', '訟': '讼', '誦': '诵', '擻': '擞', '蘇': '苏',
	'訴': '诉', '肅': '肃', '雖': '虽', '隨': '随', '綏': '绥',
	'歲': '岁', '孫': '孙', '損': '损', '筍': '笋', '縮': '缩',
	'瑣': '琐', '鎖': '锁', '獺': '獭', '撻': '挞', '態': '态',
	'攤': '摊', '貪': '贪', '癱': '瘫', '灘': '滩', '壇': '坛',
	'譚': '谭', '談': '谈', '嘆': '叹', '湯': '汤', '燙': '烫',
	'濤': '涛', '絛': '绦', '討': '讨', '騰': '腾', '謄': '誊',
	'銻': '锑', '題': '题', '體': '体', '屜': '屉', '條': '条',
	'貼': '贴', '鐵': '铁', '廳': '厅', '聽': '听', '烴': '烃',
	'銅': '铜', '統': '统', '頭': '头', '禿': '秃', '圖': '图',
	'塗': '涂', '團': '团', '頹': '颓', '蛻': '蜕', '脫': '脱',
	'鴕': '鸵', '馱': '驮', '駝': '驼', '橢': '椭', '窪': '洼',
	'襪': '袜', '彎': '弯', '灣': '湾', '頑': '顽', '萬': '万',
	'網': '网', '韋': '韦', '違': '违', '圍': '围', '為': '为',
	'濰': '潍', '維': '维', '葦': '苇', '偉': '伟', '偽': '伪',
	'緯': '纬', '謂': '谓', '衛': '卫', '溫': '温', '聞': '闻',
	'紋': '纹', '穩': '稳', '問': '问', '甕': '瓮', '撾': '挝',
	'蝸': '蜗', '渦': '涡', '窩': '窝', '臥': '卧', '嗚': '呜',
	'鎢': '钨', '烏': '乌', '誣': '诬', '無': '无', '蕪': '芜',
	'塢': '坞', '霧': '雾', '務': '务', '誤': '误', '錫': '锡',
	'犧': '牺', '襲': '袭', '習': '习', '璽': '玺', '戲': '戏',
	'細': '细', '蝦': '虾', '轄': '辖', '峽': '峡', '俠': '侠',
	'狹': '狭', '廈': '厦', '嚇': '吓', '鍁': '锨', '鮮': '鲜',
	'纖': '纤', '鹹': '咸', '賢': '贤', '銜': '衔', '閑': '闲',
	'顯': '显', '險': '险', '現': '现', '獻': '献', '縣': '县',
	'餡': '馅', '羨': '羡', '憲': '宪', '線': '线', '廂': '厢',
	'鑲': '镶', '鄉': '乡', '詳': '详', '響': '响', '項': '项',
	'蕭': '萧', '囂': '嚣', '銷': '销', '曉': '晓', '嘯': '啸',
	'蠍': '蝎', '協': '协', '挾': '挟', '攜': '携', '脅': '胁',
	'諧': '谐', '寫': '写', '瀉': '泻', '謝': '谢', '鋅': '锌',
	'釁': '衅', '興': '兴', '洶': '汹', '鏽': '锈', '繡': '绣',
	'虛': '虚', '噓': '嘘', '須': '须', '許': '许', '敘': '叙',
	'緒': '绪', '續': '续', '軒': '轩', '懸': '悬', '選': '选',
	'癬': '癣', '絢': '绚', '學': '学', '勛': '勋', '詢': '询',
	'尋': '寻', '馴': '驯', '訓': '训', '訊': '讯', '遜': '逊',
	'壓': '压', '鴉': '鸦', '鴨': '鸭', '啞': '哑', '亞': '亚',
	'訝': '讶', '閹': '阉', '煙': '烟', '鹽': '盐', '嚴': '严',
	'顏': '颜', '閻': '阎', '豔': '艳', '厭': '厌', '硯': '砚',
	'彥': '彦', '諺': '谚', '驗': '验', '鴦': '鸯', '楊': '杨',
	'揚': '扬', '瘍': '疡', '陽': '阳', '癢': '痒', '養': '养',
	'樣': '样', '瑤': '瑶', '搖': '摇', '堯': '尧', '遙': '遥',
	'窯': '窑', '謠': '谣', '藥': '药', '爺': '爷', '頁': '页',
	'業': '业', '葉': '叶', '醫': '医', '銥': '铱', '頤': '颐',
	'遺': '遗', '儀': '仪', '蟻': '蚁', '藝': '艺', '億': '亿',
	'憶': '忆', '義': '义', '詣': '诣', '議': '议', '誼': '谊',
	'譯': '译', '異': '异', '繹': '绎', '蔭': '荫', '陰': '阴',
	'銀': '银', '飲': '饮', '隱': '隐', '櫻': '樱', '嬰': '婴',
	'鷹': '鹰', '應': '应', '纓': '缨', '瑩': '莹', '螢': '萤',
	'營': '营', '贏': '赢', '蠅': '蝇', '擁': '拥', '傭': '佣',
	'踴': '踊', '優': '优', '憂': '忧', '郵': '邮', '鈾': '铀',
	'猶': '犹', '遊': '游', '誘': '诱', '輿': '舆', '魚': '鱼',
	'漁': '渔', '娛': '娱', '與': '与', '嶼': '屿', '語': '语',
	'獄': '狱', '譽': '誉', '預': '预', '馭': '驭', '鴛': '鸳',
	'淵': '渊', '轅': '辕', '園': '园', '員': '员', '圓': '圆',
	'緣': '缘', '遠': '远', '願': '愿', '約': '约', '躍': '跃',
	'鑰': '钥', '嶽': '岳', '粵': '粤', '悅': '悦', '閱': '阅',
	'雲': '云', '鄖': '郧', '勻': '匀', '隕': '陨', '運': '运',
	'蘊': '蕴', '醞': '酝', '暈': '晕', '韻': '韵', '雜': '杂',
	'災': '灾', '載': '载', '攢': '攒', '暫': '暂', '贊': '赞',
	'贓': '赃', '髒': '脏', '鑿': '凿', '棗': '枣', '竈': '灶',
	'責': '责', '擇': '择', '則': '则', '澤': '泽', '賊': '贼',
	'贈': '赠', '紮': '扎', '軋': '轧', '鍘': '铡', '閘': '闸',
	'柵': '栅', '詐': '诈', '齋': '斋', '債': '债', '氈': '毡',
	'盞': '盏', '斬': '斩', '輾': '辗', '嶄': '崭', '棧': '栈',
	'戰': '战', '綻': '绽', '張': '张', '漲': '涨', '帳': '帐',
	'賬': '账', '脹': '胀', '趙': '赵', '蟄': '蛰', '轍': '辙',
	'鍺': '锗', '這': '这', '貞': '贞', '針': '针', '偵': '侦',
	'診': '诊', '鎮': '镇', '陣': '阵', '掙': '挣', '睜': '睁',
	'猙': '狰', '爭': '争', '幀': '帧', '鄭': '郑', '證': '证',
	'織': '织', '職': '职', '執': '执', '紙': '纸', '摯': '挚',
	'擲': '掷', '幟': '帜', '質': '质', '滯': '滞', '鐘': '钟',
	'終': '终', '種': '种', '腫': '肿', '眾': '众', '謅': '诌',
	'軸': '轴', '皺': '皱', '晝': '昼', '驟': '骤', '豬': '猪',
	'諸': '诸', '誅': '诛', '燭': '烛', '矚': '瞩', '囑': '嘱',
	'貯': '贮', '鑄': '铸', '築': '筑', '駐': '驻', '專': '专',
	'磚': '砖', '轉': '转', '賺': '赚', '樁': '桩', '莊': '庄',
	'裝': '装', '妝': '妆', '壯': '壮', '狀': '状', '錐': '锥',
	'贅': '赘', '墜': '坠', '綴': '缀', '諄': '谆', '濁': '浊',
	'茲': '兹', '資': '资', '漬': '渍', '蹤': '踪', '綜': '综',
	'總': '总', '縱': '纵', '鄒': '邹', '詛': '诅', '組': '组',
	'鑽': '钻',
}
